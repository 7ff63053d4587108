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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.PortfolioService
}

func NewHandler(svc service.PortfolioService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/portfolio")
	group.POST("/list", ginx.B[ListRequest](h.List))
	group.POST("/detail", ginx.B[DetailRequest](h.Detail))
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	group := server.Group("/portfolio")
	group.POST("/create", ginx.BS[CreateRequest](h.Create))
	group.POST("/vote", ginx.BS[VoteRequest](h.Vote))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Portfolio{
		Uid:         sess.Claims().Uid,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	case errors.Is(err, service.ErrEmptyTitle):
		return invalidInputResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}
	list, total, err := h.svc.List(ctx.Request.Context(),
		ranking.ParseMode(req.Mode), req.Page, req.PageSize, currentActor(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PortfolioList{
			Portfolios: slice.Map(list, func(_ int, src domain.Portfolio) Portfolio {
				return h.toVO(src)
			}),
			Total:       total,
			HasNextPage: int64(req.Page*req.PageSize) < total,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailRequest) (ginx.Result, error) {
	res, err := h.svc.Detail(ctx.Request.Context(), req.Id, currentActor(ctx))
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(res),
		}, nil
	case errors.Is(err, service.ErrPortfolioNotFound):
		return notFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Vote(ctx *ginx.Context, req VoteRequest, sess session.Session) (ginx.Result, error) {
	summary, err := h.svc.Vote(ctx.Request.Context(), req.Id,
		reaction.Actor{Uid: sess.Claims().Uid}, reaction.Kind(req.Kind))
	switch {
	case err == nil:
		return ginx.Result{
			Data: VoteResponse{
				UpvoteCnt:   summary.UpvoteCnt,
				DownvoteCnt: summary.DownvoteCnt,
				ViewerKind:  string(summary.ViewerKind),
			},
		}, nil
	case errors.Is(err, service.ErrInvalidVote):
		return invalidInputResult, err
	case errors.Is(err, service.ErrPortfolioNotFound):
		return notFoundResult, err
	default:
		return systemErrorResult, err
	}
}

// currentActor 公开接口尽力识别访问者，让登录用户一打开就能看到自己的表态
func currentActor(ctx *ginx.Context) reaction.Actor {
	sess, err := session.Get(ctx)
	if err != nil {
		return reaction.Actor{}
	}
	return reaction.Actor{Uid: sess.Claims().Uid}
}

func (h *Handler) toVO(p domain.Portfolio) Portfolio {
	return Portfolio{
		Id:          p.Id,
		Uid:         p.Uid,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		UpvoteCnt:   p.UpvoteCnt,
		DownvoteCnt: p.DownvoteCnt,
		ViewCnt:     p.ViewCnt,
		ViewerKind:  p.ViewerKind,
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
}
