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

const Biz = "portfolio"

// Portfolio 用户分享的持仓组合
type Portfolio struct {
	Id  int64
	Uid int64

	Title       string
	Description string
	ImageURL    string

	// 计数来自表态模块，落库的只有上面的内容字段
	UpvoteCnt   int
	DownvoteCnt int
	ViewCnt     int
	// 当前访问者的表态
	ViewerKind string

	Ctime int64
	Utime int64
}
