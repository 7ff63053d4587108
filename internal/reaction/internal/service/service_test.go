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
	"fmt"
	"testing"

	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存版仓储，翻转语义和真实 DAO 保持一致
type fakeRepo struct {
	// key: biz|bizId|actorKey
	reactions map[string]domain.Kind
	summaries map[string]*domain.Summary
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		reactions: map[string]domain.Kind{},
		summaries: map[string]*domain.Summary{},
	}
}

func (f *fakeRepo) reactionKey(biz string, bizId int64, actor domain.Actor) string {
	return fmt.Sprintf("%s|%d|%s", biz, bizId, actor.Key())
}

func (f *fakeRepo) summaryOf(biz string, bizId int64) *domain.Summary {
	key := fmt.Sprintf("%s|%d", biz, bizId)
	if _, ok := f.summaries[key]; !ok {
		f.summaries[key] = &domain.Summary{Biz: biz, BizId: bizId}
	}
	return f.summaries[key]
}

func (f *fakeRepo) adjust(summary *domain.Summary, kind domain.Kind, delta int) {
	switch kind {
	case domain.KindLike:
		summary.LikeCnt += delta
	case domain.KindDislike:
		summary.DislikeCnt += delta
	case domain.KindUpvote:
		summary.UpvoteCnt += delta
	case domain.KindDownvote:
		summary.DownvoteCnt += delta
	}
}

func (f *fakeRepo) Toggle(_ context.Context, biz string, bizId int64, actor domain.Actor, kind domain.Kind) (domain.Summary, error) {
	key := f.reactionKey(biz, bizId, actor)
	summary := f.summaryOf(biz, bizId)
	current, ok := f.reactions[key]
	switch {
	case !ok:
		f.reactions[key] = kind
		f.adjust(summary, kind, 1)
	case current == kind:
		delete(f.reactions, key)
		f.adjust(summary, kind, -1)
	default:
		f.reactions[key] = kind
		f.adjust(summary, current, -1)
		f.adjust(summary, kind, 1)
	}
	res := *summary
	res.ViewerKind = f.reactions[key]
	return res, nil
}

func (f *fakeRepo) IncrViewCnt(_ context.Context, biz string, bizId int64) error {
	f.summaryOf(biz, bizId).ViewCnt++
	return nil
}

func (f *fakeRepo) Get(_ context.Context, biz string, bizId int64, actor domain.Actor) (domain.Summary, error) {
	res := *f.summaryOf(biz, bizId)
	res.ViewerKind = f.reactions[f.reactionKey(biz, bizId, actor)]
	return res, nil
}

func (f *fakeRepo) GetByIds(_ context.Context, biz string, actor domain.Actor, ids []int64) ([]domain.Summary, error) {
	res := make([]domain.Summary, 0, len(ids))
	for _, id := range ids {
		summary, err := f.Get(context.Background(), biz, id, actor)
		if err != nil {
			return nil, err
		}
		res = append(res, summary)
	}
	return res, nil
}

func TestReactionService_Toggle(t *testing.T) {
	t.Parallel()
	const biz = "comment"
	alice := domain.Actor{Uid: 11}
	bob := domain.Actor{Uid: 12}

	t.Run("没身份直接拒绝", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		_, err := svc.Toggle(context.Background(), biz, 1, domain.Actor{}, domain.KindLike)
		assert.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("非法表态类型", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		_, err := svc.Toggle(context.Background(), biz, 1, alice, domain.Kind("star"))
		assert.ErrorIs(t, err, ErrInvalidKind)
	})

	t.Run("重复表态等于取消", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		summary, err := svc.Toggle(context.Background(), biz, 1, alice, domain.KindLike)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.LikeCnt)
		assert.Equal(t, domain.KindLike, summary.ViewerKind)

		summary, err = svc.Toggle(context.Background(), biz, 1, alice, domain.KindLike)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.LikeCnt)
		assert.Equal(t, domain.KindNone, summary.ViewerKind)
	})

	t.Run("极性切换一次到位", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		_, err := svc.Toggle(context.Background(), biz, 1, bob, domain.KindLike)
		require.NoError(t, err)
		_, err = svc.Toggle(context.Background(), biz, 1, alice, domain.KindLike)
		require.NoError(t, err)

		// alice 从赞切换到踩，赞 -1 踩 +1
		summary, err := svc.Toggle(context.Background(), biz, 1, alice, domain.KindDislike)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.LikeCnt)
		assert.Equal(t, 1, summary.DislikeCnt)
		assert.Equal(t, domain.KindDislike, summary.ViewerKind)
	})

	t.Run("匿名身份按会话标识记账", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		anon := domain.Actor{AnonKey: "2DqpzLkWnAR4hFYtbEQsGm"}
		summary, err := svc.Toggle(context.Background(), biz, 1, anon, domain.KindLike)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.LikeCnt)

		// 同一个会话再点一次就取消，不会重复计数
		summary, err = svc.Toggle(context.Background(), biz, 1, anon, domain.KindLike)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.LikeCnt)
	})

	t.Run("不同身份互不影响", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeRepo())
		_, err := svc.Toggle(context.Background(), "portfolio", 7, alice, domain.KindUpvote)
		require.NoError(t, err)
		summary, err := svc.Toggle(context.Background(), "portfolio", 7, bob, domain.KindDownvote)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.UpvoteCnt)
		assert.Equal(t, 1, summary.DownvoteCnt)
	})
}

func TestReactionService_GetByIds(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeRepo())

	summaries, err := svc.GetByIds(context.Background(), "portfolio", domain.Actor{Uid: 11}, nil)
	require.NoError(t, err)
	assert.Nil(t, summaries)

	_, err = svc.Toggle(context.Background(), "portfolio", 1, domain.Actor{Uid: 11}, domain.KindUpvote)
	require.NoError(t, err)
	summaries, err = svc.GetByIds(context.Background(), "portfolio",
		domain.Actor{Uid: 11}, []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].UpvoteCnt)
	assert.Equal(t, domain.KindUpvote, summaries[0].ViewerKind)
	assert.Equal(t, domain.KindNone, summaries[1].ViewerKind)
}

func TestActorKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "u:11", domain.Actor{Uid: 11}.Key())
	assert.Equal(t, "a:abc", domain.Actor{AnonKey: "abc"}.Key())
	// 登录态优先于会话标识
	assert.Equal(t, "u:11", domain.Actor{Uid: 11, AnonKey: "abc"}.Key())
	assert.Equal(t, "", domain.Actor{}.Key())
}
