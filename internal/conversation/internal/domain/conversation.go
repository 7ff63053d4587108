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

const Biz = "conversation"

// Conversation 围绕某个话题的讨论串
type Conversation struct {
	Id  int64
	Uid int64

	Title   string
	Content string
	// Ticker 关联的股票代码，可以为空
	Ticker string

	UpvoteCnt   int
	DownvoteCnt int
	ViewCnt     int
	ViewerKind  string

	Ctime int64
	Utime int64
}
