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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/repository/dao"
)

var (
	ErrInvalidParentID = dao.ErrInvalidParentID
	ErrRecordNotFound  = dao.ErrRecordNotFound
)

type CommentRepository interface {
	// Create 创建评论，返回带ID和时间戳的完整评论
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	// FindBySubject 查找某一对象下的全量评论
	FindBySubject(ctx context.Context, biz string, bizID int64) ([]domain.Comment, error)
	// CountBySubject 统计某一对象下的评论总数
	CountBySubject(ctx context.Context, biz string, bizID int64) (int64, error)
	// FindByID 根据评论ID查找评论
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	// Delete 硬删除单条评论
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(dao dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: dao}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.Create(ctx, r.toEntity(comment))
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(created), nil
}

func (r *commentRepository) FindBySubject(ctx context.Context, biz string, bizID int64) ([]domain.Comment, error) {
	found, err := r.dao.FindBySubject(ctx, biz, bizID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) CountBySubject(ctx context.Context, biz string, bizID int64) (int64, error) {
	return r.dao.CountBySubject(ctx, biz, bizID)
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	return dao.Comment{
		ID:        comment.ID,
		Uid:       comment.User.ID,
		Anonymous: comment.Anonymous,
		Biz:       comment.Biz,
		BizID:     comment.BizID,
		ParentID:  sql.Null[int64]{V: comment.ParentID, Valid: comment.ParentID != 0},
		Content:   comment.Content,
	}
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID: comment.ID,
		User: domain.User{
			ID: comment.Uid,
		},
		Anonymous: comment.Anonymous,
		Biz:       comment.Biz,
		BizID:     comment.BizID,
		ParentID:  comment.ParentID.V,
		Content:   comment.Content,
		Ctime:     comment.Ctime,
		Utime:     comment.Utime,
	}
}
