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
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/event"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmptyTitle        = errors.New("组合标题不能为空")
	ErrPortfolioNotFound = errors.New("组合不存在")
	ErrInvalidVote       = errors.New("组合只支持顶和踩")
)

type PortfolioService interface {
	Create(ctx context.Context, p domain.Portfolio) (int64, error)
	// List 按榜单模式排完序再分页，page 从 1 开始
	List(ctx context.Context, mode ranking.Mode, page, pageSize int, actor reaction.Actor) ([]domain.Portfolio, int64, error)
	Detail(ctx context.Context, id int64, actor reaction.Actor) (domain.Portfolio, error)
	// Vote 委托给表态模块，返回落库后的权威计数
	Vote(ctx context.Context, id int64, actor reaction.Actor, kind reaction.Kind) (reaction.Summary, error)
}

type portfolioService struct {
	repo        repository.PortfolioRepository
	reactionSvc reaction.Service
	engine      *ranking.Engine
	producer    event.ReactionEventProducer
	logger      *elog.Component
}

func NewService(repo repository.PortfolioRepository,
	reactionSvc reaction.Service,
	engine *ranking.Engine,
	producer event.ReactionEventProducer) PortfolioService {
	return &portfolioService{
		repo:        repo,
		reactionSvc: reactionSvc,
		engine:      engine,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *portfolioService) Create(ctx context.Context, p domain.Portfolio) (int64, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return 0, ErrEmptyTitle
	}
	return s.repo.Create(ctx, p)
}

func (s *portfolioService) List(ctx context.Context, mode ranking.Mode, page, pageSize int, actor reaction.Actor) ([]domain.Portfolio, int64, error) {
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
	ranked, err := s.rank(ctx, all, mode, actor)
	if err != nil {
		return nil, 0, err
	}
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end], total, nil
}

func (s *portfolioService) Detail(ctx context.Context, id int64, actor reaction.Actor) (domain.Portfolio, error) {
	res, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Portfolio{}, ErrPortfolioNotFound
		}
		return domain.Portfolio{}, err
	}
	summary, err := s.reactionSvc.Get(ctx, domain.Biz, id, actor)
	if err != nil {
		return domain.Portfolio{}, err
	}
	s.attach(&res, summary)
	go func() {
		newCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		err1 := s.producer.Produce(newCtx, event.NewViewCntEvent(id, domain.Biz))
		if err1 != nil {
			s.logger.Error("发送组合阅读计数消息到消息队列失败",
				elog.FieldErr(err1),
				elog.Int64("pid", id))
		}
	}()
	return res, nil
}

func (s *portfolioService) Vote(ctx context.Context, id int64, actor reaction.Actor, kind reaction.Kind) (reaction.Summary, error) {
	if kind != reaction.KindUpvote && kind != reaction.KindDownvote {
		return reaction.Summary{}, ErrInvalidVote
	}
	_, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return reaction.Summary{}, ErrPortfolioNotFound
		}
		return reaction.Summary{}, err
	}
	return s.reactionSvc.Toggle(ctx, domain.Biz, id, actor, kind)
}

func (s *portfolioService) rank(ctx context.Context, all []domain.Portfolio, mode ranking.Mode, actor reaction.Actor) ([]domain.Portfolio, error) {
	ids := slice.Map(all, func(_ int, src domain.Portfolio) int64 {
		return src.Id
	})
	summaries, err := s.reactionSvc.GetByIds(ctx, domain.Biz, actor, ids)
	if err != nil {
		return nil, err
	}
	summaryMap := make(map[int64]reaction.Summary, len(summaries))
	for _, summary := range summaries {
		summaryMap[summary.BizId] = summary
	}
	byId := make(map[int64]domain.Portfolio, len(all))
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
	return slice.Map(ranked, func(_ int, src ranking.Item) domain.Portfolio {
		return byId[src.ID]
	}), nil
}

func (s *portfolioService) attach(p *domain.Portfolio, summary reaction.Summary) {
	p.UpvoteCnt = summary.UpvoteCnt
	p.DownvoteCnt = summary.DownvoteCnt
	p.ViewCnt = summary.ViewCnt
	p.ViewerKind = string(summary.ViewerKind)
}
