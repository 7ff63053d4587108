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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmptyTitle           = errors.New("讨论串标题不能为空")
	ErrConversationNotFound = errors.New("讨论串不存在")
	ErrInvalidVote          = errors.New("讨论串只支持顶和踩")
)

type ConversationService interface {
	Create(ctx context.Context, c domain.Conversation) (int64, error)
	List(ctx context.Context, mode ranking.Mode, page, pageSize int, actor reaction.Actor) ([]domain.Conversation, int64, error)
	Detail(ctx context.Context, id int64, actor reaction.Actor) (domain.Conversation, error)
	Vote(ctx context.Context, id int64, actor reaction.Actor, kind reaction.Kind) (reaction.Summary, error)
}

type conversationService struct {
	repo        repository.ConversationRepository
	reactionSvc reaction.Service
	engine      *ranking.Engine
	logger      *elog.Component
}

func NewService(repo repository.ConversationRepository,
	reactionSvc reaction.Service,
	engine *ranking.Engine) ConversationService {
	return &conversationService{
		repo:        repo,
		reactionSvc: reactionSvc,
		engine:      engine,
		logger:      elog.DefaultLogger,
	}
}

func (s *conversationService) Create(ctx context.Context, c domain.Conversation) (int64, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return 0, ErrEmptyTitle
	}
	return s.repo.Create(ctx, c)
}

func (s *conversationService) List(ctx context.Context, mode ranking.Mode, page, pageSize int, actor reaction.Actor) ([]domain.Conversation, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	if total == 0 {
		return nil, 0, nil
	}
	ids := slice.Map(all, func(_ int, src domain.Conversation) int64 {
		return src.Id
	})
	summaries, err := s.reactionSvc.GetByIds(ctx, domain.Biz, actor, ids)
	if err != nil {
		return nil, 0, err
	}
	summaryMap := make(map[int64]reaction.Summary, len(summaries))
	for _, summary := range summaries {
		summaryMap[summary.BizId] = summary
	}
	byId := make(map[int64]domain.Conversation, len(all))
	items := make([]ranking.Item, 0, len(all))
	for i := range all {
		summary := summaryMap[all[i].Id]
		s.attach(&all[i], summary)
		byId[all[i].Id] = all[i]
		items = append(items, ranking.Item{
			ID:        all[i].Id,
			Ctime:     all[i].Ctime,
			Upvotes:   summary.UpvoteCnt,
			Downvotes: summary.DownvoteCnt,
		})
	}
	ranked := s.engine.Rank(items, mode, time.Now())
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return slice.Map(ranked[start:end], func(_ int, src ranking.Item) domain.Conversation {
		return byId[src.ID]
	}), total, nil
}

func (s *conversationService) Detail(ctx context.Context, id int64, actor reaction.Actor) (domain.Conversation, error) {
	res, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Conversation{}, ErrConversationNotFound
		}
		return domain.Conversation{}, err
	}
	summary, err := s.reactionSvc.Get(ctx, domain.Biz, id, actor)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.attach(&res, summary)
	// 讨论串的浏览量写入频率不高，直接落库，不走消息队列
	go func() {
		newCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		if er := s.reactionSvc.IncrViewCnt(newCtx, domain.Biz, id); er != nil {
			s.logger.Error("记录讨论串浏览量失败",
				elog.FieldErr(er),
				elog.Int64("cid", id))
		}
	}()
	return res, nil
}

func (s *conversationService) Vote(ctx context.Context, id int64, actor reaction.Actor, kind reaction.Kind) (reaction.Summary, error) {
	if kind != reaction.KindUpvote && kind != reaction.KindDownvote {
		return reaction.Summary{}, ErrInvalidVote
	}
	_, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return reaction.Summary{}, ErrConversationNotFound
		}
		return reaction.Summary{}, err
	}
	return s.reactionSvc.Toggle(ctx, domain.Biz, id, actor, kind)
}

func (s *conversationService) attach(c *domain.Conversation, summary reaction.Summary) {
	c.UpvoteCnt = summary.UpvoteCnt
	c.DownvoteCnt = summary.DownvoteCnt
	c.ViewCnt = summary.ViewCnt
	c.ViewerKind = string(summary.ViewerKind)
}
