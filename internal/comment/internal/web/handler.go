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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	// 评论集合所有人可见，匿名访客也能看
	group.POST("/list", ginx.B[ListRequest](h.List))
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.BS[CreateRequest](h.Create))
	group.POST("/delete", ginx.BS[DeleteRequest](h.Delete))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	created, err := h.svc.Submit(ctx.Request.Context(), domain.Comment{
		User: domain.User{
			ID: sess.Claims().Uid,
		},
		Anonymous: req.Anonymous,
		Biz:       req.Biz,
		BizID:     req.BizID,
		ParentID:  req.ParentID,
		Content:   req.Content,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(created),
		}, nil
	case errors.Is(err, service.ErrEmptyContent), errors.Is(err, service.ErrContentTooLong):
		return invalidInputResult, err
	case errors.Is(err, service.ErrInvalidParent):
		return invalidParentResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	comments, total, err := h.svc.List(ctx.Request.Context(), req.Biz, req.BizID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找%q业务的%d资源的评论失败: %w", req.Biz, req.BizID, err)
	}
	return ginx.Result{
		Data: CommentList{
			Comments: slice.Map(comments, func(_ int, src domain.Comment) Comment {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteRequest, sess session.Session) (ginx.Result, error) {
	privileged := sess.Claims().Get("creator").StringOrDefault("") == "true"
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid, privileged)
	switch {
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	case errors.Is(err, service.ErrCommentNotFound):
		return notFoundResult, err
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toVO(c domain.Comment) Comment {
	vo := Comment{
		ID: c.ID,
		User: User{
			ID:       c.User.ID,
			Nickname: c.User.NickName,
			Avatar:   c.User.Avatar,
		},
		Anonymous:  c.Anonymous,
		Biz:        c.Biz,
		BizID:      c.BizID,
		ParentID:   c.ParentID,
		Content:    c.Content,
		LikeCnt:    c.LikeCnt,
		DislikeCnt: c.DislikeCnt,
		Ctime:      c.Ctime,
		Utime:      c.Utime,
	}
	if c.Anonymous {
		// 匿名评论不往外吐评论者
		vo.User = User{}
	}
	return vo
}
