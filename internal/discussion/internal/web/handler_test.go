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
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/comment"
	commentmocks "github.com/ecodeclub/stocktalk/internal/comment/mocks"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	reactionmocks "github.com/ecodeclub/stocktalk/internal/reaction/mocks"
	"github.com/ecodeclub/stocktalk/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testBiz   = "conversation"
	testBizId = int64(7)
	testUid   = int64(1234)
)

// newServer uid 为 0 表示没登录
func newServer(t *testing.T, uid int64) (*gin.Engine, *commentmocks.MockCommentService, *reactionmocks.MockReactionService) {
	ctrl := gomock.NewController(t)
	commentSvc := commentmocks.NewMockCommentService(ctrl)
	reactionSvc := reactionmocks.NewMockReactionService(ctrl)
	hdl := NewHandler(service.NewSessions(commentSvc, reactionSvc))
	server := gin.New()
	if uid != 0 {
		server.Use(func(ctx *gin.Context) {
			ctx.Set("_session", session.NewMemorySession(session.Claims{
				Uid: uid,
			}))
		})
	}
	hdl.PublicRoutes(server)
	return server, commentSvc, reactionSvc
}

func TestHandler_Load(t *testing.T) {
	t.Run("登录用户一打开就能看到自己的表态", func(t *testing.T) {
		server, commentSvc, reactionSvc := newServer(t, testUid)
		commentSvc.EXPECT().
			List(gomock.Any(), testBiz, testBizId).
			Return(nil, int64(0), nil)
		reactionSvc.EXPECT().
			Get(gomock.Any(), testBiz, testBizId, reaction.Actor{Uid: testUid}).
			Return(reaction.Summary{
				Biz:        testBiz,
				BizId:      testBizId,
				UpvoteCnt:  5,
				ViewerKind: reaction.KindUpvote,
			}, nil)

		req, err := http.NewRequest(http.MethodPost, "/discussion/load",
			iox.NewJSONReader(LoadRequest{Biz: testBiz, BizId: testBizId}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[View]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		data := recorder.MustScan().Data
		assert.Equal(t, 5, data.Summary.UpvoteCnt)
		assert.Equal(t, string(reaction.KindUpvote), data.Summary.ViewerKind)
	})

	t.Run("匿名访客没有表态标记", func(t *testing.T) {
		server, commentSvc, reactionSvc := newServer(t, 0)
		commentSvc.EXPECT().
			List(gomock.Any(), testBiz, testBizId).
			Return(nil, int64(0), nil)
		reactionSvc.EXPECT().
			Get(gomock.Any(), testBiz, testBizId, reaction.Actor{}).
			Return(reaction.Summary{
				Biz:       testBiz,
				BizId:     testBizId,
				UpvoteCnt: 5,
			}, nil)

		req, err := http.NewRequest(http.MethodPost, "/discussion/load",
			iox.NewJSONReader(LoadRequest{Biz: testBiz, BizId: testBizId}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[View]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.MustScan().Data.Summary.ViewerKind)
	})
}

func TestHandler_AnonComment(t *testing.T) {
	server, commentSvc, reactionSvc := newServer(t, 0)
	commentSvc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c comment.Comment) (comment.Comment, error) {
			// 访客没有登录身份，请求侧没勾匿名也一律按匿名落库
			assert.True(t, c.Anonymous)
			assert.Zero(t, c.User.ID)
			c.ID = 1
			return c, nil
		})
	commentSvc.EXPECT().
		List(gomock.Any(), testBiz, testBizId).
		Return([]comment.Comment{
			{ID: 1, Anonymous: true, Biz: testBiz, BizID: testBizId, Content: "匿名说两句"},
		}, int64(1), nil)
	reactionSvc.EXPECT().
		Get(gomock.Any(), testBiz, testBizId, gomock.Any()).
		Return(reaction.Summary{Biz: testBiz, BizId: testBizId}, nil)
	reactionSvc.EXPECT().
		GetByIds(gomock.Any(), service.CommentBiz, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	req, err := http.NewRequest(http.MethodPost, "/discussion/anon/comment",
		iox.NewJSONReader(CommentRequest{
			Biz:     testBiz,
			BizId:   testBizId,
			Content: "匿名说两句",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[View]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(t, int64(1), data.Total)

	// 第一次来会发一个会话级匿名标记
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "anon_key", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestHandler_AnonReact(t *testing.T) {
	server, commentSvc, reactionSvc := newServer(t, 0)
	// 带着上次发的标记来，表态要落在同一个匿名身份上
	actor := reaction.Actor{AnonKey: "visitor-1"}
	reactionSvc.EXPECT().
		Toggle(gomock.Any(), testBiz, testBizId, actor, reaction.KindUpvote).
		Return(reaction.Summary{
			Biz:        testBiz,
			BizId:      testBizId,
			UpvoteCnt:  1,
			ViewerKind: reaction.KindUpvote,
		}, nil)
	commentSvc.EXPECT().
		List(gomock.Any(), testBiz, testBizId).
		Return(nil, int64(0), nil)
	reactionSvc.EXPECT().
		Get(gomock.Any(), testBiz, testBizId, actor).
		Return(reaction.Summary{
			Biz:        testBiz,
			BizId:      testBizId,
			UpvoteCnt:  1,
			ViewerKind: reaction.KindUpvote,
		}, nil)

	req, err := http.NewRequest(http.MethodPost, "/discussion/anon/react",
		iox.NewJSONReader(ReactRequest{
			Biz:      testBiz,
			BizId:    testBizId,
			TargetId: testBizId,
			Kind:     string(reaction.KindUpvote),
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.AddCookie(&http.Cookie{Name: "anon_key", Value: "visitor-1"})
	recorder := test.NewJSONResponseRecorder[View]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(t, 1, data.Summary.UpvoteCnt)
	assert.Equal(t, string(reaction.KindUpvote), data.Summary.ViewerKind)

	// 已经有标记了，不再重发
	assert.Empty(t, recorder.Result().Cookies())
}
