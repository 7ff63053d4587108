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

	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository"
)

var (
	// ErrAuthRequired 既没有登录态也没有会话标识，没法记账
	ErrAuthRequired = errors.New("表态需要可识别的身份")
	ErrInvalidKind  = errors.New("不支持的表态类型")
)

type ReactionService interface {
	// Toggle 翻转一次表态：没表过就记上，表过同类就取消，表过反向就切换。
	// 返回的汇总是落库后的权威数据，调用方应当用它整个覆盖本地乐观副本
	Toggle(ctx context.Context, biz string, bizId int64, actor domain.Actor, kind domain.Kind) (domain.Summary, error)
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	Get(ctx context.Context, biz string, bizId int64, actor domain.Actor) (domain.Summary, error)
	GetByIds(ctx context.Context, biz string, actor domain.Actor, ids []int64) ([]domain.Summary, error)
}

type reactionService struct {
	repo repository.ReactionRepository
}

func NewService(repo repository.ReactionRepository) ReactionService {
	return &reactionService{
		repo: repo,
	}
}

func (s *reactionService) Toggle(ctx context.Context, biz string, bizId int64, actor domain.Actor, kind domain.Kind) (domain.Summary, error) {
	if actor.Key() == "" {
		return domain.Summary{}, ErrAuthRequired
	}
	if !kind.Valid() {
		return domain.Summary{}, ErrInvalidKind
	}
	return s.repo.Toggle(ctx, biz, bizId, actor, kind)
}

func (s *reactionService) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return s.repo.IncrViewCnt(ctx, biz, bizId)
}

func (s *reactionService) Get(ctx context.Context, biz string, bizId int64, actor domain.Actor) (domain.Summary, error) {
	return s.repo.Get(ctx, biz, bizId, actor)
}

func (s *reactionService) GetByIds(ctx context.Context, biz string, actor domain.Actor, ids []int64) ([]domain.Summary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.GetByIds(ctx, biz, actor, ids)
}
