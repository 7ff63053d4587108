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
	"errors"
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"golang.org/x/sync/errgroup"
)

// CommentBiz 评论在表态账本里的业务标识
const CommentBiz = "comment"

var (
	ErrInvalidParent = comment.ErrInvalidParent
	ErrUnknownTarget = errors.New("表态对象不在当前视图里")
	ErrAuthRequired  = reaction.ErrAuthRequired
)

// View 一个讨论视图的完整快照：主体的计数加上整棵评论树
type View struct {
	Biz     string
	BizId   int64
	Summary reaction.Summary
	Tree    []*comment.ThreadNode
	Total   int64
}

// Session 单个讨论视图的协调者。
// 所有变更串行执行，成功后整体重拉评论集合再重建树，
// 不做局部补丁合并，宁可多一次往返也不让本地视图漂移。
type Session struct {
	biz   string
	bizId int64
	actor reaction.Actor

	commentSvc  comment.Service
	reactionSvc reaction.Service

	mu sync.Mutex
	// 上一次加载到的评论 id 集合，回复目标必须在里面
	loaded map[int64]struct{}
	view   View
}

func (s *Session) Actor() reaction.Actor {
	return s.actor
}

func (s *Session) Load(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

// SubmitComment 发表评论或回复。parentId 为 0 表示直接评论，
// 否则必须指向上次加载到的某条评论
func (s *Session) SubmitComment(ctx context.Context, content string, parentId int64, anonymous bool) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.actor.Uid == 0 {
		if s.actor.AnonKey == "" {
			return View{}, ErrAuthRequired
		}
		// 没登录的访客只能匿名发言
		anonymous = true
	}
	if parentId != 0 {
		if _, ok := s.loaded[parentId]; !ok {
			return View{}, ErrInvalidParent
		}
	}
	_, err := s.commentSvc.Submit(ctx, comment.Comment{
		User:      comment.CommentUser{ID: s.actor.Uid},
		Anonymous: anonymous,
		Biz:       s.biz,
		BizID:     s.bizId,
		ParentID:  parentId,
		Content:   content,
	})
	if err != nil {
		return View{}, err
	}
	return s.reload(ctx)
}

// React 对视图里的某个对象表态。顶和踩落在讨论主体上，
// 赞和踩落在评论上，目标评论必须在上次加载到的集合里
func (s *Session) React(ctx context.Context, targetId int64, kind reaction.Kind) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	biz, err := s.resolveTarget(targetId, kind)
	if err != nil {
		return View{}, err
	}
	if _, err = s.reactionSvc.Toggle(ctx, biz, targetId, s.actor, kind); err != nil {
		return View{}, err
	}
	return s.reload(ctx)
}

func (s *Session) resolveTarget(targetId int64, kind reaction.Kind) (string, error) {
	switch kind {
	case reaction.KindUpvote, reaction.KindDownvote:
		if targetId != s.bizId {
			return "", ErrUnknownTarget
		}
		return s.biz, nil
	case reaction.KindLike, reaction.KindDislike:
		if _, ok := s.loaded[targetId]; !ok {
			return "", ErrUnknownTarget
		}
		return CommentBiz, nil
	default:
		return "", reaction.ErrInvalidKind
	}
}

// reload 重拉完整视图。任何一步失败都不动已有状态
func (s *Session) reload(ctx context.Context) (View, error) {
	var (
		comments []comment.Comment
		total    int64
		summary  reaction.Summary
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var err error
		comments, total, err = s.commentSvc.List(ctx, s.biz, s.bizId)
		return err
	})
	eg.Go(func() error {
		var err error
		summary, err = s.reactionSvc.Get(ctx, s.biz, s.bizId, s.actor)
		return err
	})
	if err := eg.Wait(); err != nil {
		return View{}, err
	}
	if err := s.attachReactions(ctx, comments); err != nil {
		return View{}, err
	}
	loaded := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		loaded[c.ID] = struct{}{}
	}
	s.loaded = loaded
	s.view = View{
		Biz:     s.biz,
		BizId:   s.bizId,
		Summary: summary,
		Tree:    comment.BuildThread(comments),
		Total:   total,
	}
	return s.view, nil
}

func (s *Session) attachReactions(ctx context.Context, comments []comment.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := slice.Map(comments, func(_ int, src comment.Comment) int64 {
		return src.ID
	})
	summaries, err := s.reactionSvc.GetByIds(ctx, CommentBiz, s.actor, ids)
	if err != nil {
		return err
	}
	summaryMap := make(map[int64]reaction.Summary, len(summaries))
	for _, summary := range summaries {
		summaryMap[summary.BizId] = summary
	}
	for i := range comments {
		summary := summaryMap[comments[i].ID]
		comments[i].LikeCnt = summary.LikeCnt
		comments[i].DislikeCnt = summary.DislikeCnt
	}
	return nil
}
