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

package comment

import (
	"github.com/ecodeclub/stocktalk/internal/comment/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/service"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.CommentService
type Comment = domain.Comment
type CommentUser = domain.User
type ThreadNode = domain.ThreadNode

// BuildThread 把扁平评论列表还原成回复树，给展示层和 discussion 模块用
func BuildThread(comments []Comment) []*ThreadNode {
	return domain.BuildThread(comments)
}

var (
	ErrEmptyContent     = service.ErrEmptyContent
	ErrContentTooLong   = service.ErrContentTooLong
	ErrInvalidParent    = service.ErrInvalidParent
	ErrCommentNotFound  = service.ErrCommentNotFound
	ErrPermissionDenied = service.ErrPermissionDenied
)
