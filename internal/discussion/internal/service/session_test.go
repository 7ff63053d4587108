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
	"testing"

	"github.com/ecodeclub/stocktalk/internal/comment"
	commentmocks "github.com/ecodeclub/stocktalk/internal/comment/mocks"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	reactionmocks "github.com/ecodeclub/stocktalk/internal/reaction/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testBiz   = "conversation"
	testBizId = int64(7)
)

type testEnv struct {
	sessions    *Sessions
	commentSvc  *commentmocks.MockCommentService
	reactionSvc *reactionmocks.MockReactionService
	// comments 是"服务端"当前的评论集合，List 每次都返回它的快照
	comments []comment.Comment
	nextId   int64
}

func newTestEnv(t *testing.T, comments []comment.Comment) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		commentSvc:  commentmocks.NewMockCommentService(ctrl),
		reactionSvc: reactionmocks.NewMockReactionService(ctrl),
		comments:    comments,
		nextId:      100,
	}
	env.sessions = NewSessions(env.commentSvc, env.reactionSvc)
	env.commentSvc.EXPECT().
		List(gomock.Any(), testBiz, testBizId).
		DoAndReturn(func(_ context.Context, _ string, _ int64) ([]comment.Comment, int64, error) {
			res := make([]comment.Comment, len(env.comments))
			copy(res, env.comments)
			return res, int64(len(res)), nil
		}).
		AnyTimes()
	env.reactionSvc.EXPECT().
		Get(gomock.Any(), testBiz, testBizId, gomock.Any()).
		Return(reaction.Summary{Biz: testBiz, BizId: testBizId, UpvoteCnt: 5}, nil).
		AnyTimes()
	env.reactionSvc.EXPECT().
		GetByIds(gomock.Any(), CommentBiz, gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	return env
}

func twoComments() []comment.Comment {
	return []comment.Comment{
		{ID: 1, User: comment.CommentUser{ID: 11}, Biz: testBiz, BizID: testBizId, Content: "根评论", Ctime: 10},
		{ID: 2, User: comment.CommentUser{ID: 12}, Biz: testBiz, BizID: testBizId, ParentID: 1, Content: "回复", Ctime: 20},
	}
}

func TestSession_Load(t *testing.T) {
	env := newTestEnv(t, twoComments())
	sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})

	view, err := sess.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.Total)
	assert.Equal(t, 5, view.Summary.UpvoteCnt)
	require.Len(t, view.Tree, 1)
	assert.Equal(t, int64(1), view.Tree[0].Comment.ID)
	require.Len(t, view.Tree[0].Children, 1)
	assert.Equal(t, int64(2), view.Tree[0].Children[0].Comment.ID)
	assert.Equal(t, 1, view.Tree[0].Children[0].Depth)
}

func TestSession_SubmitComment(t *testing.T) {
	t.Run("完全没有身份", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := &Session{
			biz:         testBiz,
			bizId:       testBizId,
			commentSvc:  env.commentSvc,
			reactionSvc: env.reactionSvc,
		}
		_, err := sess.SubmitComment(context.Background(), "想插一句", 0, false)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("匿名访客强制匿名发言", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{AnonKey: "k"})
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.commentSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c comment.Comment) (comment.Comment, error) {
				// 访客没有登录身份，落库必须是匿名的
				assert.True(t, c.Anonymous)
				assert.Zero(t, c.User.ID)
				env.nextId++
				c.ID = env.nextId
				env.comments = append(env.comments, c)
				return c, nil
			})
		// 请求侧没勾匿名也不认，一律按匿名处理
		view, err := sess.SubmitComment(context.Background(), "匿名说两句", 0, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), view.Total)
	})

	t.Run("回复目标不在上次加载的集合里", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
		_, err := sess.Load(context.Background())
		require.NoError(t, err)
		// 999 没加载过，不落库直接拒绝
		_, err = sess.SubmitComment(context.Background(), "回复谁呢", 999, false)
		assert.ErrorIs(t, err, ErrInvalidParent)
	})

	t.Run("成功后整体重拉重建树", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.commentSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c comment.Comment) (comment.Comment, error) {
				env.nextId++
				c.ID = env.nextId
				c.Ctime = 30
				env.comments = append(env.comments, c)
				return c, nil
			})
		view, err := sess.SubmitComment(context.Background(), "再补一条", 1, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), view.Total)
		// 新评论挂在 1 下面，成了 2 的弟弟
		require.Len(t, view.Tree[0].Children, 2)
		assert.Equal(t, int64(101), view.Tree[0].Children[1].Comment.ID)

		// 新加载集合里包含新评论，可以继续回复它
		env.commentSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c comment.Comment) (comment.Comment, error) {
				env.nextId++
				c.ID = env.nextId
				env.comments = append(env.comments, c)
				return c, nil
			})
		view, err = sess.SubmitComment(context.Background(), "回复新评论", 101, false)
		require.NoError(t, err)
		assert.Equal(t, int64(4), view.Total)
	})

	t.Run("落库失败本地视图不动", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
		before, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.commentSvc.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(comment.Comment{}, errors.New("数据库挂了"))
		_, err = sess.SubmitComment(context.Background(), "发不出去", 0, false)
		require.Error(t, err)

		after, err := sess.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before.Total, after.Total)
	})
}

func TestSession_React(t *testing.T) {
	t.Run("顶主体", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		actor := reaction.Actor{Uid: 11}
		sess := env.sessions.Open(testBiz, testBizId, actor)
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.reactionSvc.EXPECT().
			Toggle(gomock.Any(), testBiz, testBizId, actor, reaction.KindUpvote).
			Return(reaction.Summary{Biz: testBiz, BizId: testBizId, UpvoteCnt: 6}, nil)
		view, err := sess.React(context.Background(), testBizId, reaction.KindUpvote)
		require.NoError(t, err)
		// 返回的是重拉后的权威视图，不是乐观合并的结果
		assert.Equal(t, 5, view.Summary.UpvoteCnt)
	})

	t.Run("赞评论", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		actor := reaction.Actor{Uid: 11}
		sess := env.sessions.Open(testBiz, testBizId, actor)
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.reactionSvc.EXPECT().
			Toggle(gomock.Any(), CommentBiz, int64(2), actor, reaction.KindLike).
			Return(reaction.Summary{Biz: CommentBiz, BizId: 2, LikeCnt: 1}, nil)
		_, err = sess.React(context.Background(), 2, reaction.KindLike)
		require.NoError(t, err)
	})

	t.Run("匿名访客也能表态", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		actor := reaction.Actor{AnonKey: "k"}
		sess := env.sessions.Open(testBiz, testBizId, actor)
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		env.reactionSvc.EXPECT().
			Toggle(gomock.Any(), testBiz, testBizId, actor, reaction.KindUpvote).
			Return(reaction.Summary{Biz: testBiz, BizId: testBizId, UpvoteCnt: 6}, nil)
		_, err = sess.React(context.Background(), testBizId, reaction.KindUpvote)
		require.NoError(t, err)
	})

	t.Run("表态对象不在视图里", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		_, err = sess.React(context.Background(), 999, reaction.KindLike)
		assert.ErrorIs(t, err, ErrUnknownTarget)
		// 顶只能顶主体自己
		_, err = sess.React(context.Background(), 2, reaction.KindUpvote)
		assert.ErrorIs(t, err, ErrUnknownTarget)
	})

	t.Run("不认识的表态类型", func(t *testing.T) {
		env := newTestEnv(t, twoComments())
		sess := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
		_, err := sess.Load(context.Background())
		require.NoError(t, err)

		_, err = sess.React(context.Background(), testBizId, reaction.Kind("star"))
		assert.ErrorIs(t, err, reaction.ErrInvalidKind)
	})
}

func TestSessions_Open(t *testing.T) {
	env := newTestEnv(t, nil)

	// 同一个人对同一个主体拿到的是同一个会话
	a := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
	b := env.sessions.Open(testBiz, testBizId, reaction.Actor{Uid: 11})
	assert.Same(t, a, b)

	// 匿名访客每次 Open 都是新身份，对应的表态去重只在会话内有效
	anon1 := env.sessions.Open(testBiz, testBizId, reaction.Actor{})
	anon2 := env.sessions.Open(testBiz, testBizId, reaction.Actor{})
	assert.NotSame(t, anon1, anon2)
	assert.NotEmpty(t, anon1.Actor().AnonKey)
	assert.NotEqual(t, anon1.Actor().Key(), anon2.Actor().Key())
}
