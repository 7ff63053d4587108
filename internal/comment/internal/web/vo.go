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

package web

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	ID int64 `json:"id"`

	// 评论的人。匿名评论时整体置空
	User      User `json:"user"`
	Anonymous bool `json:"anonymous"`

	// 针对什么东西的评论。
	// 注意，即便是回复某个评论，那么这两个字段依旧有值
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`

	// 回复某个评论，0 表示直接评论
	ParentID int64 `json:"parentID"`

	Content string `json:"content"`

	LikeCnt    int `json:"likeCnt"`
	DislikeCnt int `json:"dislikeCnt"`

	Ctime int64 `json:"ctime"`
	Utime int64 `json:"utime"`
}

type CreateRequest struct {
	Biz       string `json:"biz"`
	BizID     int64  `json:"bizID"`
	ParentID  int64  `json:"parentID"`
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

type ListRequest struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
}

type DeleteRequest struct {
	ID int64 `json:"id"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}
