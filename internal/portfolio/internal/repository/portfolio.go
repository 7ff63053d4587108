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
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type PortfolioRepository interface {
	Create(ctx context.Context, p domain.Portfolio) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Portfolio, error)
	FindAll(ctx context.Context) ([]domain.Portfolio, error)
}

type portfolioRepository struct {
	portfolioDao dao.PortfolioDAO
}

func NewPortfolioRepository(portfolioDao dao.PortfolioDAO) PortfolioRepository {
	return &portfolioRepository{
		portfolioDao: portfolioDao,
	}
}

func (r *portfolioRepository) Create(ctx context.Context, p domain.Portfolio) (int64, error) {
	return r.portfolioDao.Create(ctx, r.toEntity(p))
}

func (r *portfolioRepository) FindById(ctx context.Context, id int64) (domain.Portfolio, error) {
	entity, err := r.portfolioDao.FindById(ctx, id)
	if err != nil {
		return domain.Portfolio{}, err
	}
	return r.toDomain(entity), nil
}

func (r *portfolioRepository) FindAll(ctx context.Context) ([]domain.Portfolio, error) {
	entities, err := r.portfolioDao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Portfolio) domain.Portfolio {
		return r.toDomain(src)
	}), nil
}

func (r *portfolioRepository) toEntity(p domain.Portfolio) dao.Portfolio {
	return dao.Portfolio{
		Id:          p.Id,
		Uid:         p.Uid,
		Title:       p.Title,
		Description: p.Description,
		ImageUrl:    p.ImageURL,
	}
}

func (r *portfolioRepository) toDomain(entity dao.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		Id:          entity.Id,
		Uid:         entity.Uid,
		Title:       entity.Title,
		Description: entity.Description,
		ImageURL:    entity.ImageUrl,
		Ctime:       entity.Ctime,
		Utime:       entity.Utime,
	}
}
