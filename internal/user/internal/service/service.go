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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/user/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/user/internal/repository/dao"
)

type UserService interface {
	// Profile 单个用户资料
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 批量查询用户资料，查不到的ID直接跳过
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	dao dao.UserDAO
}

func NewUserService(dao dao.UserDAO) UserService {
	return &userService{dao: dao}
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return s.toDomain(u), nil
}

func (s *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := s.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(users, func(_ int, src dao.User) domain.User {
		return s.toDomain(src)
	}), nil
}

func (s *userService) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
