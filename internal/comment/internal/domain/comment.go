// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

const (
	// MaxRootContentLength 直接评论的长度上限
	MaxRootContentLength = 1000
	// MaxReplyContentLength 回复的长度上限。回复应当更简短，所以上限更低
	MaxReplyContentLength = 500
)

type User struct {
	ID       int64
	NickName string
	Avatar   string
}

type Comment struct {
	ID int64
	// 评论的人。匿名评论依旧会记录评论者，只是展示时隐去
	User User
	// 匿名发表
	Anonymous bool

	// 评论的对象：股票、讨论串或者组合
	Biz   string
	BizID int64

	// 要回复的父评论ID，0 表示直接评论（根评论）
	ParentID int64

	// 评论的具体内容。评论本身创建之后不允许修改
	Content string

	// 点赞、点踩计数，来自 reaction 模块的权威汇总
	LikeCnt    int
	DislikeCnt int

	Ctime int64
	Utime int64
}

// Root 是否直接评论
func (c Comment) Root() bool {
	return c.ParentID == 0
}
