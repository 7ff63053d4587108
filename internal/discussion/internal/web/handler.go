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
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

// anonKeyCookie 匿名访客的会话级标记。
// 同一个标记内的表态才有去重，换个浏览器会话就是新身份
const anonKeyCookie = "anon_key"

const anonKeyMaxAge = 24 * 60 * 60

var _ ginx.Handler = &Handler{}

type Handler struct {
	sessions *service.Sessions
}

func NewHandler(sessions *service.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/discussion")
	group.POST("/load", ginx.B[LoadRequest](h.Load))
	// 没登录也能参与讨论，身份落在会话级匿名标记上
	group.POST("/anon/comment", ginx.B[CommentRequest](h.AnonComment))
	group.POST("/anon/react", ginx.B[ReactRequest](h.AnonReact))
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	group := server.Group("/discussion")
	group.POST("/comment", ginx.BS[CommentRequest](h.Comment))
	group.POST("/react", ginx.BS[ReactRequest](h.React))
}

func (h *Handler) Load(ctx *ginx.Context, req LoadRequest) (ginx.Result, error) {
	view, err := h.sessions.Peek(ctx.Request.Context(), req.Biz, req.BizId, currentActor(ctx))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(view),
	}, nil
}

func (h *Handler) Comment(ctx *ginx.Context, req CommentRequest, sess session.Session) (ginx.Result, error) {
	discussion := h.sessions.Open(req.Biz, req.BizId, reaction.Actor{Uid: sess.Claims().Uid})
	view, err := discussion.SubmitComment(ctx.Request.Context(), req.Content, req.ParentId, req.Anonymous)
	return h.commentResult(view, err)
}

// AnonComment 匿名访客发言，评论一律按匿名处理
func (h *Handler) AnonComment(ctx *ginx.Context, req CommentRequest) (ginx.Result, error) {
	discussion := h.sessions.Open(req.Biz, req.BizId, h.anonActor(ctx))
	view, err := discussion.SubmitComment(ctx.Request.Context(), req.Content, req.ParentId, true)
	return h.commentResult(view, err)
}

func (h *Handler) React(ctx *ginx.Context, req ReactRequest, sess session.Session) (ginx.Result, error) {
	discussion := h.sessions.Open(req.Biz, req.BizId, reaction.Actor{Uid: sess.Claims().Uid})
	view, err := discussion.React(ctx.Request.Context(), req.TargetId, reaction.Kind(req.Kind))
	return h.reactResult(view, err)
}

func (h *Handler) AnonReact(ctx *ginx.Context, req ReactRequest) (ginx.Result, error) {
	discussion := h.sessions.Open(req.Biz, req.BizId, h.anonActor(ctx))
	view, err := discussion.React(ctx.Request.Context(), req.TargetId, reaction.Kind(req.Kind))
	return h.reactResult(view, err)
}

func (h *Handler) commentResult(view service.View, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(view),
		}, nil
	case errors.Is(err, service.ErrInvalidParent):
		return invalidParentResult, err
	case errors.Is(err, comment.ErrEmptyContent), errors.Is(err, comment.ErrContentTooLong):
		return invalidInputResult, err
	case errors.Is(err, service.ErrAuthRequired):
		return unauthorizedResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) reactResult(view service.View, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(view),
		}, nil
	case errors.Is(err, service.ErrUnknownTarget):
		return unknownTargetResult, err
	case errors.Is(err, reaction.ErrInvalidKind):
		return invalidInputResult, err
	case errors.Is(err, service.ErrAuthRequired):
		return unauthorizedResult, err
	default:
		return systemErrorResult, err
	}
}

// anonActor 从 cookie 里取匿名标记，第一次来就发一个新的
func (h *Handler) anonActor(ctx *ginx.Context) reaction.Actor {
	key, err := ctx.Cookie(anonKeyCookie).String()
	if err != nil || key == "" {
		key = shortuuid.New()
		ctx.SetCookie(anonKeyCookie, key, anonKeyMaxAge, "/", "", false, true)
	}
	return reaction.Actor{AnonKey: key}
}

// currentActor 公开接口尽力识别访问者，让登录用户一打开就能看到自己的表态
func currentActor(ctx *ginx.Context) reaction.Actor {
	sess, err := session.Get(ctx)
	if err != nil {
		return reaction.Actor{}
	}
	return reaction.Actor{Uid: sess.Claims().Uid}
}

func (h *Handler) toVO(view service.View) View {
	return View{
		Biz:   view.Biz,
		BizId: view.BizId,
		Summary: Summary{
			UpvoteCnt:   view.Summary.UpvoteCnt,
			DownvoteCnt: view.Summary.DownvoteCnt,
			ViewCnt:     view.Summary.ViewCnt,
			ViewerKind:  string(view.Summary.ViewerKind),
		},
		Tree:  h.toNodes(view.Tree),
		Total: view.Total,
	}
}

func (h *Handler) toNodes(nodes []*comment.ThreadNode) []Node {
	return slice.Map(nodes, func(_ int, src *comment.ThreadNode) Node {
		node := Node{
			ID: src.Comment.ID,
			User: User{
				ID:       src.Comment.User.ID,
				Nickname: src.Comment.User.NickName,
				Avatar:   src.Comment.User.Avatar,
			},
			Anonymous:     src.Comment.Anonymous,
			Content:       src.Comment.Content,
			Depth:         src.Depth,
			ParentMissing: src.ParentMissing,
			LikeCnt:       src.Comment.LikeCnt,
			DislikeCnt:    src.Comment.DislikeCnt,
			Ctime:         src.Comment.Ctime,
			Children:      h.toNodes(src.Children),
		}
		if node.Anonymous {
			node.User = User{}
		}
		return node
	})
}
