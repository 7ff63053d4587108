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
	"unicode/utf8"

	"github.com/ecodeclub/stocktalk/internal/comment/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/user"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyContent 去掉首尾空白后内容为空
	ErrEmptyContent = errors.New("评论内容不能为空")
	// ErrContentTooLong 超出长度上限，直接评论和回复的上限不同
	ErrContentTooLong = errors.New("评论内容超长")
	// ErrInvalidParent 回复的目标评论不存在或不属于同一对象
	ErrInvalidParent = errors.New("回复的评论不存在")
	// ErrCommentNotFound 评论不存在
	ErrCommentNotFound = errors.New("评论不存在")
	// ErrPermissionDenied 只有作者本人或管理员能删除评论
	ErrPermissionDenied = errors.New("无权操作该评论")
)

type CommentService interface {
	// Submit 发表评论或回复。内容先做 trim，创建后不可修改
	Submit(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	// List 查找某一对象下的全量评论（扁平列表）及总数。
	// 评论树由调用方用 domain.BuildThread 组装
	List(ctx context.Context, biz string, bizID int64) ([]domain.Comment, int64, error)
	// Delete 硬删除评论。带回复的评论也允许删，回复保留为孤儿由评论树兜底展示
	Delete(ctx context.Context, id, uid int64, privileged bool) error
}

type commentService struct {
	userSvc user.UserService
	repo    repository.CommentRepository
}

func NewCommentService(userSvc user.UserService, repo repository.CommentRepository) CommentService {
	return &commentService{userSvc: userSvc, repo: repo}
}

func (s *commentService) Submit(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	comment.Content = strings.TrimSpace(comment.Content)
	if comment.Content == "" {
		return domain.Comment{}, ErrEmptyContent
	}
	limit := domain.MaxRootContentLength
	if !comment.Root() {
		limit = domain.MaxReplyContentLength
	}
	if utf8.RuneCountInString(comment.Content) > limit {
		return domain.Comment{}, ErrContentTooLong
	}
	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidParentID) {
			return domain.Comment{}, ErrInvalidParent
		}
		return domain.Comment{}, err
	}
	return created, nil
}

func (s *commentService) List(ctx context.Context, biz string, bizID int64) ([]domain.Comment, int64, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)

	eg.Go(func() error {
		var err error
		comments, err = s.repo.FindBySubject(ctx, biz, bizID)
		if err != nil {
			return err
		}
		return s.setUserInfo(ctx, comments)
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySubject(ctx, biz, bizID)
		return err
	})

	return comments, total, eg.Wait()
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	uids := make([]int64, 0, len(comments))
	for i := range comments {
		uids = append(uids, comments[i].User.ID)
	}

	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	userInfoMap := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		userInfoMap[p.Id] = domain.User{
			ID:       p.Id,
			NickName: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	for i := range comments {
		if u, ok := userInfoMap[comments[i].User.ID]; ok {
			comments[i].User = u
		}
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, id, uid int64, privileged bool) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.User.ID != uid && !privileged {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
