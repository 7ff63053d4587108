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

type ToggleReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
	// like, dislike, upvote, downvote
	Kind string `json:"kind"`
}

type ViewReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type BatchGetCntReq struct {
	Biz    string  `json:"biz"`
	BizIds []int64 `json:"bizIds"`
}

type Summary struct {
	LikeCnt     int `json:"likeCnt"`
	DislikeCnt  int `json:"dislikeCnt"`
	UpvoteCnt   int `json:"upvoteCnt"`
	DownvoteCnt int `json:"downvoteCnt"`
	ViewCnt     int `json:"viewCnt"`
	// 当前访问者的表态，空串表示没表态
	ViewerKind string `json:"viewerKind"`
}

type BatchGetCntResp struct {
	SummaryMap map[int64]Summary `json:"summaryMap"`
}
