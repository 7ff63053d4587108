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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/domain"
	conversationmocks "github.com/ecodeclub/stocktalk/internal/conversation/mocks"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ecodeclub/stocktalk/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUid = int64(1234)

// newServer uid 为 0 表示没登录
func newServer(t *testing.T, uid int64) (*gin.Engine, *conversationmocks.MockConversationService) {
	ctrl := gomock.NewController(t)
	svc := conversationmocks.NewMockConversationService(ctrl)
	hdl := NewHandler(svc)
	server := gin.New()
	if uid != 0 {
		server.Use(func(ctx *gin.Context) {
			ctx.Set("_session", session.NewMemorySession(session.Claims{
				Uid: uid,
			}))
		})
	}
	hdl.PublicRoutes(server)
	return server, svc
}

func TestHandler_Detail(t *testing.T) {
	t.Run("登录用户一打开就能看到自己的表态", func(t *testing.T) {
		server, svc := newServer(t, testUid)
		svc.EXPECT().
			Detail(gomock.Any(), int64(7), reaction.Actor{Uid: testUid}).
			Return(domain.Conversation{
				Id:         7,
				Title:      "这只票还能拿吗",
				UpvoteCnt:  3,
				ViewerKind: string(reaction.KindUpvote),
			}, nil)

		req, err := http.NewRequest(http.MethodPost, "/conversation/detail",
			iox.NewJSONReader(DetailRequest{Id: 7}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[Conversation]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		data := recorder.MustScan().Data
		assert.Equal(t, 3, data.UpvoteCnt)
		assert.Equal(t, string(reaction.KindUpvote), data.ViewerKind)
	})

	t.Run("匿名访客没有表态标记", func(t *testing.T) {
		server, svc := newServer(t, 0)
		svc.EXPECT().
			Detail(gomock.Any(), int64(7), reaction.Actor{}).
			Return(domain.Conversation{
				Id:        7,
				Title:     "这只票还能拿吗",
				UpvoteCnt: 3,
			}, nil)

		req, err := http.NewRequest(http.MethodPost, "/conversation/detail",
			iox.NewJSONReader(DetailRequest{Id: 7}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[Conversation]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.MustScan().Data.ViewerKind)
	})
}

func TestHandler_List(t *testing.T) {
	server, svc := newServer(t, testUid)
	svc.EXPECT().
		List(gomock.Any(), ranking.ModeHot, 1, 10, reaction.Actor{Uid: testUid}).
		Return([]domain.Conversation{
			{Id: 7, Title: "这只票还能拿吗", ViewerKind: string(reaction.KindUpvote)},
		}, int64(1), nil)

	req, err := http.NewRequest(http.MethodPost, "/conversation/list",
		iox.NewJSONReader(ListRequest{Mode: "hot", Page: 1, PageSize: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[ConversationList]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	data := recorder.MustScan().Data
	require.Len(t, data.Conversations, 1)
	assert.Equal(t, string(reaction.KindUpvote), data.Conversations[0].ViewerKind)
}
