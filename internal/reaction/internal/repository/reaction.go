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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/cache"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

var defaultCacheTimeout = 1 * time.Second

type ReactionRepository interface {
	// Toggle 翻转表态并返回翻转后的权威汇总
	Toggle(ctx context.Context, biz string, bizId int64, actor domain.Actor, kind domain.Kind) (domain.Summary, error)
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	Get(ctx context.Context, biz string, bizId int64, actor domain.Actor) (domain.Summary, error)
	GetByIds(ctx context.Context, biz string, actor domain.Actor, ids []int64) ([]domain.Summary, error)
}

type reactionRepository struct {
	reactionDao  dao.ReactionDAO
	summaryCache cache.SummaryCache
	logger       *elog.Component
}

func NewCachedReactionRepository(reactionDao dao.ReactionDAO, summaryCache cache.SummaryCache) ReactionRepository {
	return &reactionRepository{
		reactionDao:  reactionDao,
		summaryCache: summaryCache,
		logger:       elog.DefaultLogger,
	}
}

func (r *reactionRepository) Toggle(ctx context.Context, biz string, bizId int64, actor domain.Actor, kind domain.Kind) (domain.Summary, error) {
	entity, effective, err := r.reactionDao.Toggle(ctx, biz, bizId, actor.Key(), string(kind))
	if err != nil {
		return domain.Summary{}, err
	}
	res := r.toDomain(entity)
	res.ViewerKind = domain.Kind(effective)
	go r.refreshCache(res)
	return res, nil
}

func (r *reactionRepository) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	err := r.reactionDao.IncrViewCnt(ctx, biz, bizId)
	if err != nil {
		return err
	}
	// 浏览量写得勤，直接淘汰缓存，下次读再回填
	cctx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
	defer cancel()
	if er := r.summaryCache.DelSummary(cctx, biz, bizId); er != nil {
		r.logger.Error("淘汰计数缓存失败", elog.FieldErr(er))
	}
	return nil
}

func (r *reactionRepository) Get(ctx context.Context, biz string, bizId int64, actor domain.Actor) (domain.Summary, error) {
	res, err := r.summaryCache.GetSummary(ctx, biz, bizId)
	if err != nil {
		res, err = r.getFromDB(ctx, biz, bizId)
		if err != nil {
			return domain.Summary{}, err
		}
	}
	res.ViewerKind, err = r.viewerKind(ctx, biz, bizId, actor)
	return res, err
}

func (r *reactionRepository) GetByIds(ctx context.Context, biz string, actor domain.Actor, ids []int64) ([]domain.Summary, error) {
	var (
		entities []dao.ReactionSummary
		kindMap  = map[int64]domain.Kind{}
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		entities, eerr = r.reactionDao.GetByIds(ctx, biz, ids)
		return eerr
	})
	if actor.Key() != "" {
		eg.Go(func() error {
			reactions, eerr := r.reactionDao.GetActorReactions(ctx, biz, actor.Key(), ids)
			if eerr != nil {
				return eerr
			}
			for _, ur := range reactions {
				kindMap[ur.BizId] = domain.Kind(ur.Kind)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.ReactionSummary) domain.Summary {
		res := r.toDomain(src)
		res.ViewerKind = kindMap[src.BizId]
		return res
	}), nil
}

func (r *reactionRepository) getFromDB(ctx context.Context, biz string, bizId int64) (domain.Summary, error) {
	entity, err := r.reactionDao.Get(ctx, biz, bizId)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// 没人表态过也没人看过，等价于全零汇总
			return domain.Summary{Biz: biz, BizId: bizId}, nil
		}
		return domain.Summary{}, err
	}
	res := r.toDomain(entity)
	go r.refreshCache(res)
	return res, nil
}

func (r *reactionRepository) viewerKind(ctx context.Context, biz string, bizId int64, actor domain.Actor) (domain.Kind, error) {
	if actor.Key() == "" {
		return domain.KindNone, nil
	}
	ur, err := r.reactionDao.GetActorReaction(ctx, biz, bizId, actor.Key())
	switch {
	case err == nil:
		return domain.Kind(ur.Kind), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.KindNone, nil
	default:
		return domain.KindNone, err
	}
}

func (r *reactionRepository) refreshCache(summary domain.Summary) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultCacheTimeout)
	defer cancel()
	if err := r.summaryCache.SetSummary(ctx, summary); err != nil {
		r.logger.Error("回填计数缓存失败", elog.FieldErr(err))
	}
}

func (r *reactionRepository) toDomain(entity dao.ReactionSummary) domain.Summary {
	return domain.Summary{
		Biz:         entity.Biz,
		BizId:       entity.BizId,
		LikeCnt:     entity.LikeCnt,
		DislikeCnt:  entity.DislikeCnt,
		UpvoteCnt:   entity.UpvoteCnt,
		DownvoteCnt: entity.DownvoteCnt,
		ViewCnt:     entity.ViewCnt,
	}
}
