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

type LoadRequest struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type CommentRequest struct {
	Biz       string `json:"biz"`
	BizId     int64  `json:"bizId"`
	ParentId  int64  `json:"parentId"`
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

type ReactRequest struct {
	Biz      string `json:"biz"`
	BizId    int64  `json:"bizId"`
	TargetId int64  `json:"targetId"`
	// upvote/downvote 落在主体上，like/dislike 落在评论上
	Kind string `json:"kind"`
}

type Summary struct {
	UpvoteCnt   int    `json:"upvoteCnt"`
	DownvoteCnt int    `json:"downvoteCnt"`
	ViewCnt     int    `json:"viewCnt"`
	ViewerKind  string `json:"viewerKind"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// Node 评论树节点
type Node struct {
	ID        int64  `json:"id"`
	User      User   `json:"user"`
	Anonymous bool   `json:"anonymous"`
	Content   string `json:"content"`

	Depth int `json:"depth"`
	// 父评论已经被删掉，这条被提升成根来展示
	ParentMissing bool `json:"parentMissing"`

	LikeCnt    int `json:"likeCnt"`
	DislikeCnt int `json:"dislikeCnt"`

	Ctime int64 `json:"ctime"`

	Children []Node `json:"children"`
}

type View struct {
	Biz     string  `json:"biz"`
	BizId   int64   `json:"bizId"`
	Summary Summary `json:"summary"`
	Tree    []Node  `json:"tree"`
	Total   int64   `json:"total"`
}
