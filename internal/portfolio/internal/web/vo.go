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

type Portfolio struct {
	Id          int64  `json:"id"`
	Uid         int64  `json:"uid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	UpvoteCnt   int    `json:"upvoteCnt"`
	DownvoteCnt int    `json:"downvoteCnt"`
	ViewCnt     int    `json:"viewCnt"`
	ViewerKind  string `json:"viewerKind"`

	Ctime int64 `json:"ctime"`
	Utime int64 `json:"utime"`
}

type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type ListRequest struct {
	// hot new top controversial，不认识的一律按 hot 算
	Mode     string `json:"mode"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type PortfolioList struct {
	Portfolios  []Portfolio `json:"portfolios"`
	Total       int64       `json:"total"`
	HasNextPage bool        `json:"hasNextPage"`
}

type DetailRequest struct {
	Id int64 `json:"id"`
}

type VoteRequest struct {
	Id int64 `json:"id"`
	// upvote 或 downvote
	Kind string `json:"kind"`
}

type VoteResponse struct {
	UpvoteCnt   int    `json:"upvoteCnt"`
	DownvoteCnt int    `json:"downvoteCnt"`
	ViewerKind  string `json:"viewerKind"`
}
