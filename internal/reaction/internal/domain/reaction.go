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

import "fmt"

// Kind 表态类型。like/dislike 用在评论上，upvote/downvote 用在组合和话题上
type Kind string

const (
	KindNone     Kind = ""
	KindLike     Kind = "like"
	KindDislike  Kind = "dislike"
	KindUpvote   Kind = "upvote"
	KindDownvote Kind = "downvote"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLike, KindDislike, KindUpvote, KindDownvote:
		return true
	default:
		return false
	}
}

// Opposite 同一极性对里的另一边
func (k Kind) Opposite() Kind {
	switch k {
	case KindLike:
		return KindDislike
	case KindDislike:
		return KindLike
	case KindUpvote:
		return KindDownvote
	case KindDownvote:
		return KindUpvote
	default:
		return KindNone
	}
}

type Summary struct {
	Biz         string
	BizId       int64
	LikeCnt     int
	DislikeCnt  int
	UpvoteCnt   int
	DownvoteCnt int
	ViewCnt     int
	// ViewerKind 当前访问者在这个对象上的表态，没表态就是 KindNone
	ViewerKind Kind
}

// Actor 表态的人。登录用户走 Uid，匿名访客走会话级别的 AnonKey。
// AnonKey 只能做尽力而为的去重，换个会话就是新身份。
type Actor struct {
	Uid     int64
	AnonKey string
}

func (a Actor) Anonymous() bool {
	return a.Uid == 0
}

// Key 明细表里的身份键。两类身份前缀隔开，避免撞 key
func (a Actor) Key() string {
	if a.Uid > 0 {
		return fmt.Sprintf("u:%d", a.Uid)
	}
	if a.AnonKey != "" {
		return fmt.Sprintf("a:%s", a.AnonKey)
	}
	return ""
}
