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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/integration/startup"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/web"
	"github.com/ecodeclub/stocktalk/internal/test"
	testioc "github.com/ecodeclub/stocktalk/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 1234

type CommentTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	commentDAO dao.CommentDAO
	svc        comment.Service
}

func (s *CommentTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	handler := module.Hdl
	s.svc = module.Svc
	handler.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	handler.MemberRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.commentDAO = dao.NewCommentGORMDAO(s.db)
	// 评论列表会去捞评论者资料
	now := time.Now().UnixMilli()
	err = s.db.Exec("INSERT INTO `users` (id, nickname, avatar, ctime, utime) VALUES (?, ?, ?, ?, ?)",
		uid, "牛散老王", "https://a.com/1.png", now, now).Error
	require.NoError(s.T(), err)
}

func (s *CommentTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `comments`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *CommentTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `comments`").Error
	require.NoError(s.T(), err)
}

func (s *CommentTestSuite) seedComment(uid int64, biz string, bizID int64, parentID int64, content string) dao.Comment {
	c := dao.Comment{
		Uid:     uid,
		Biz:     biz,
		BizID:   bizID,
		Content: content,
	}
	if parentID > 0 {
		c.ParentID = sql.Null[int64]{V: parentID, Valid: true}
	}
	created, err := s.commentDAO.Create(context.Background(), c)
	require.NoError(s.T(), err)
	return created
}

func (s *CommentTestSuite) Test_Create() {
	testcases := []struct {
		name     string
		before   func(t *testing.T) web.CreateRequest
		after    func(t *testing.T, data web.Comment)
		wantCode int
	}{
		{
			name: "直接评论",
			before: func(t *testing.T) web.CreateRequest {
				return web.CreateRequest{
					Biz:     "conversation",
					BizID:   1,
					Content: "  散户抱团也能成事  ",
				}
			},
			after: func(t *testing.T, data web.Comment) {
				// 内容落库前去掉首尾空白
				assert.Equal(t, "散户抱团也能成事", data.Content)
				assert.Equal(t, int64(uid), data.User.ID)
				assert.True(t, data.ID > 0)
				stored, err := s.commentDAO.FindByID(context.Background(), data.ID)
				require.NoError(t, err)
				assert.Equal(t, "散户抱团也能成事", stored.Content)
				assert.False(t, stored.ParentID.Valid)
			},
			wantCode: 200,
		},
		{
			name: "回复已有评论",
			before: func(t *testing.T) web.CreateRequest {
				parent := s.seedComment(55, "conversation", 2, 0, "根评论")
				return web.CreateRequest{
					Biz:      "conversation",
					BizID:    2,
					ParentID: parent.ID,
					Content:  "接楼上",
				}
			},
			after: func(t *testing.T, data web.Comment) {
				stored, err := s.commentDAO.FindByID(context.Background(), data.ID)
				require.NoError(t, err)
				assert.True(t, stored.ParentID.Valid)
			},
			wantCode: 200,
		},
		{
			name: "匿名评论不吐评论者",
			before: func(t *testing.T) web.CreateRequest {
				return web.CreateRequest{
					Biz:       "conversation",
					BizID:     3,
					Content:   "匿了",
					Anonymous: true,
				}
			},
			after: func(t *testing.T, data web.Comment) {
				assert.True(t, data.Anonymous)
				assert.Equal(t, web.User{}, data.User)
			},
			wantCode: 200,
		},
		{
			name: "内容为空",
			before: func(t *testing.T) web.CreateRequest {
				return web.CreateRequest{
					Biz:     "conversation",
					BizID:   4,
					Content: "   ",
				}
			},
			after:    func(t *testing.T, data web.Comment) {},
			wantCode: 500,
		},
		{
			name: "回复不存在的评论",
			before: func(t *testing.T) web.CreateRequest {
				return web.CreateRequest{
					Biz:      "conversation",
					BizID:    5,
					ParentID: 9999,
					Content:  "回复谁呢",
				}
			},
			after:    func(t *testing.T, data web.Comment) {},
			wantCode: 500,
		},
	}
	for _, tc := range testcases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			createReq := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/comment/create", iox.NewJSONReader(createReq))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Comment]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == 200 {
				tc.after(t, recorder.MustScan().Data)
			}
		})
	}
}

func (s *CommentTestSuite) Test_List() {
	root := s.seedComment(uid, "portfolio", 7, 0, "重仓了")
	s.seedComment(55, "portfolio", 7, root.ID, "跟一手")
	s.seedComment(uid, "portfolio", 8, 0, "别的对象下的评论")

	req, err := http.NewRequest(http.MethodPost,
		"/comment/list", iox.NewJSONReader(web.ListRequest{Biz: "portfolio", BizID: 7}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	data := recorder.MustScan().Data
	require.Equal(s.T(), 2, data.Total)
	require.Len(s.T(), data.Comments, 2)
	assert.Equal(s.T(), "重仓了", data.Comments[0].Content)
	// 评论者资料一并带出
	assert.Equal(s.T(), "牛散老王", data.Comments[0].User.Nickname)
	assert.Equal(s.T(), root.ID, data.Comments[1].ParentID)
}

func (s *CommentTestSuite) Test_Delete() {
	testcases := []struct {
		name     string
		before   func(t *testing.T) int64
		after    func(t *testing.T, id int64)
		wantCode int
	}{
		{
			name: "删除自己的评论",
			before: func(t *testing.T) int64 {
				return s.seedComment(uid, "conversation", 11, 0, "手滑发的").ID
			},
			after: func(t *testing.T, id int64) {
				_, err := s.commentDAO.FindByID(context.Background(), id)
				assert.ErrorIs(t, err, dao.ErrRecordNotFound)
			},
			wantCode: 200,
		},
		{
			name: "删除别人的评论",
			before: func(t *testing.T) int64 {
				return s.seedComment(55, "conversation", 12, 0, "别人的评论").ID
			},
			after: func(t *testing.T, id int64) {
				_, err := s.commentDAO.FindByID(context.Background(), id)
				assert.NoError(t, err)
			},
			wantCode: 500,
		},
		{
			name: "删除不存在的评论",
			before: func(t *testing.T) int64 {
				return 9999
			},
			after:    func(t *testing.T, id int64) {},
			wantCode: 500,
		},
		{
			name: "删除带回复的评论_回复保留",
			before: func(t *testing.T) int64 {
				root := s.seedComment(uid, "conversation", 13, 0, "根评论")
				s.seedComment(55, "conversation", 13, root.ID, "回复")
				return root.ID
			},
			after: func(t *testing.T, id int64) {
				comments, err := s.commentDAO.FindBySubject(context.Background(), "conversation", 13)
				require.NoError(t, err)
				require.Len(t, comments, 1)
				assert.Equal(t, "回复", comments[0].Content)
			},
			wantCode: 200,
		},
	}
	for _, tc := range testcases {
		tc := tc
		s.T().Run(tc.name, func(t *testing.T) {
			id := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/comment/delete", iox.NewJSONReader(web.DeleteRequest{ID: id}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, id)
		})
	}
}

func TestComment(t *testing.T) {
	suite.Run(t, new(CommentTestSuite))
}
