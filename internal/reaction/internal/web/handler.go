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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 这边让前端直接传 biz 和 bizId，简化实现
type Handler struct {
	svc service.ReactionService
}

func NewHandler(svc service.ReactionService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/reaction")
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.B[GetCntReq](h.GetCnt))
	g.POST("/cnt/batch", ginx.B[BatchGetCntReq](h.BatchGetCnt))
	g.POST("/view", ginx.B[ViewReq](h.View))
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/reaction")
	g.POST("/toggle", ginx.BS[ToggleReq](h.Toggle))
}

func (h *Handler) Toggle(ctx *ginx.Context, req ToggleReq, sess session.Session) (ginx.Result, error) {
	summary, err := h.svc.Toggle(ctx.Request.Context(), req.Biz, req.BizId,
		domain.Actor{Uid: sess.Claims().Uid}, domain.Kind(req.Kind))
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(summary),
		}, nil
	case errors.Is(err, service.ErrInvalidKind):
		return invalidKindResult, err
	case errors.Is(err, service.ErrAuthRequired):
		return unauthorizedResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) View(ctx *ginx.Context, req ViewReq) (ginx.Result, error) {
	err := h.svc.IncrViewCnt(ctx.Request.Context(), req.Biz, req.BizId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq) (ginx.Result, error) {
	summary, err := h.svc.Get(ctx.Request.Context(), req.Biz, req.BizId, currentActor(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(summary),
	}, nil
}

func (h *Handler) BatchGetCnt(ctx *ginx.Context, req BatchGetCntReq) (ginx.Result, error) {
	summaries, err := h.svc.GetByIds(ctx.Request.Context(), req.Biz, currentActor(ctx), req.BizIds)
	if err != nil {
		return systemErrorResult, err
	}
	summaryMap := make(map[int64]Summary, len(summaries))
	for _, s := range summaries {
		summaryMap[s.BizId] = h.toVO(s)
	}
	return ginx.Result{
		Data: BatchGetCntResp{SummaryMap: summaryMap},
	}, nil
}

// currentActor 公开接口尽力识别访问者，让登录用户一打开就能看到自己的表态
func currentActor(ctx *ginx.Context) domain.Actor {
	sess, err := session.Get(ctx)
	if err != nil {
		return domain.Actor{}
	}
	return domain.Actor{Uid: sess.Claims().Uid}
}

func (h *Handler) toVO(summary domain.Summary) Summary {
	return Summary{
		LikeCnt:     summary.LikeCnt,
		DislikeCnt:  summary.DislikeCnt,
		UpvoteCnt:   summary.UpvoteCnt,
		DownvoteCnt: summary.DownvoteCnt,
		ViewCnt:     summary.ViewCnt,
		ViewerKind:  string(summary.ViewerKind),
	}
}
