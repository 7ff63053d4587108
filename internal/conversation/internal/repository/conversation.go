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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type ConversationRepository interface {
	Create(ctx context.Context, c domain.Conversation) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Conversation, error)
	FindAll(ctx context.Context) ([]domain.Conversation, error)
}

type conversationRepository struct {
	conversationDao dao.ConversationDAO
}

func NewConversationRepository(conversationDao dao.ConversationDAO) ConversationRepository {
	return &conversationRepository{
		conversationDao: conversationDao,
	}
}

func (r *conversationRepository) Create(ctx context.Context, c domain.Conversation) (int64, error) {
	return r.conversationDao.Create(ctx, dao.Conversation{
		Id:      c.Id,
		Uid:     c.Uid,
		Title:   c.Title,
		Content: c.Content,
		Ticker:  c.Ticker,
	})
}

func (r *conversationRepository) FindById(ctx context.Context, id int64) (domain.Conversation, error) {
	entity, err := r.conversationDao.FindById(ctx, id)
	if err != nil {
		return domain.Conversation{}, err
	}
	return r.toDomain(entity), nil
}

func (r *conversationRepository) FindAll(ctx context.Context) ([]domain.Conversation, error) {
	entities, err := r.conversationDao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Conversation) domain.Conversation {
		return r.toDomain(src)
	}), nil
}

func (r *conversationRepository) toDomain(entity dao.Conversation) domain.Conversation {
	return domain.Conversation{
		Id:      entity.Id,
		Uid:     entity.Uid,
		Title:   entity.Title,
		Content: entity.Content,
		Ticker:  entity.Ticker,
		Ctime:   entity.Ctime,
		Utime:   entity.Utime,
	}
}
