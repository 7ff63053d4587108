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

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/lithammer/shortuuid/v4"
)

// Sessions 按身份和讨论主体复用 Session，
// 同一个人对同一个主体的并发变更由 Session 内部的锁串行化
type Sessions struct {
	commentSvc  comment.Service
	reactionSvc reaction.Service

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions(commentSvc comment.Service, reactionSvc reaction.Service) *Sessions {
	return &Sessions{
		commentSvc:  commentSvc,
		reactionSvc: reactionSvc,
		sessions:    map[string]*Session{},
	}
}

// Peek 读一次视图快照，不登记会话。
// actor 只用来带出访问者自己的表态，匿名访客传零值就行
func (s *Sessions) Peek(ctx context.Context, biz string, bizId int64, actor reaction.Actor) (View, error) {
	sess := &Session{
		biz:         biz,
		bizId:       bizId,
		actor:       actor,
		commentSvc:  s.commentSvc,
		reactionSvc: s.reactionSvc,
	}
	return sess.Load(ctx)
}

// Open 打开某个讨论主体的会话。匿名访客会拿到一个会话级标记，
// 同一个 Session 里的表态靠它做尽力而为的去重，换个会话就是新身份
func (s *Sessions) Open(biz string, bizId int64, actor reaction.Actor) *Session {
	if actor.Uid == 0 && actor.AnonKey == "" {
		actor.AnonKey = shortuuid.New()
	}
	key := fmt.Sprintf("%s|%d|%s", biz, bizId, actor.Key())
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[key]; ok {
		return sess
	}
	sess := &Session{
		biz:         biz,
		bizId:       bizId,
		actor:       actor,
		commentSvc:  s.commentSvc,
		reactionSvc: s.reactionSvc,
	}
	s.sessions[key] = sess
	return sess
}
