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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/event"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	reactionmocks "github.com/ecodeclub/stocktalk/internal/reaction/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRepo struct {
	portfolios []domain.Portfolio
	nextId     int64
}

func (f *fakeRepo) Create(_ context.Context, p domain.Portfolio) (int64, error) {
	f.nextId++
	p.Id = f.nextId
	// 错开创建时间，方便断言 new 模式的顺序
	p.Ctime = time.Now().UnixMilli() + f.nextId*1000
	f.portfolios = append(f.portfolios, p)
	return p.Id, nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Portfolio, error) {
	for _, p := range f.portfolios {
		if p.Id == id {
			return p, nil
		}
	}
	return domain.Portfolio{}, repository.ErrRecordNotFound
}

func (f *fakeRepo) FindAll(_ context.Context) ([]domain.Portfolio, error) {
	res := make([]domain.Portfolio, len(f.portfolios))
	copy(res, f.portfolios)
	return res, nil
}

type fakeProducer struct {
	events chan event.ReactionEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.ReactionEvent) error {
	f.events <- evt
	return nil
}

func newTestService(t *testing.T, repo *fakeRepo) (PortfolioService, *reactionmocks.MockReactionService, *fakeProducer) {
	ctrl := gomock.NewController(t)
	reactionSvc := reactionmocks.NewMockReactionService(ctrl)
	producer := &fakeProducer{events: make(chan event.ReactionEvent, 1)}
	svc := NewService(repo, reactionSvc, ranking.NewEngine(ranking.DefaultConfig()), producer)
	return svc, reactionSvc, producer
}

func TestPortfolioService_Create(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc, _, _ := newTestService(t, repo)

	_, err := svc.Create(context.Background(), domain.Portfolio{Title: "  "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	id, err := svc.Create(context.Background(), domain.Portfolio{
		Uid:   11,
		Title: " 稳健红利组合 ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "稳健红利组合", repo.portfolios[0].Title)
}

func TestPortfolioService_Vote(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc, reactionSvc, _ := newTestService(t, repo)
	id, err := svc.Create(context.Background(), domain.Portfolio{Uid: 11, Title: "组合"})
	require.NoError(t, err)
	actor := reaction.Actor{Uid: 12}

	t.Run("只支持顶和踩", func(t *testing.T) {
		_, err := svc.Vote(context.Background(), id, actor, reaction.KindLike)
		assert.ErrorIs(t, err, ErrInvalidVote)
	})

	t.Run("组合不存在", func(t *testing.T) {
		_, err := svc.Vote(context.Background(), 999, actor, reaction.KindUpvote)
		assert.ErrorIs(t, err, ErrPortfolioNotFound)
	})

	t.Run("返回权威计数", func(t *testing.T) {
		reactionSvc.EXPECT().
			Toggle(gomock.Any(), domain.Biz, id, actor, reaction.KindUpvote).
			Return(reaction.Summary{
				Biz:        domain.Biz,
				BizId:      id,
				UpvoteCnt:  3,
				ViewerKind: reaction.KindUpvote,
			}, nil)
		summary, err := svc.Vote(context.Background(), id, actor, reaction.KindUpvote)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.UpvoteCnt)
		assert.Equal(t, reaction.KindUpvote, summary.ViewerKind)
	})
}

func TestPortfolioService_List(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc, reactionSvc, _ := newTestService(t, repo)
	for _, title := range []string{"甲", "乙", "丙"} {
		_, err := svc.Create(context.Background(), domain.Portfolio{Uid: 11, Title: title})
		require.NoError(t, err)
	}
	// 净赞数 乙 > 丙 > 甲
	summaries := []reaction.Summary{
		{Biz: domain.Biz, BizId: 1, UpvoteCnt: 1, DownvoteCnt: 5},
		{Biz: domain.Biz, BizId: 2, UpvoteCnt: 9},
		{Biz: domain.Biz, BizId: 3, UpvoteCnt: 4, DownvoteCnt: 1},
	}
	reactionSvc.EXPECT().
		GetByIds(gomock.Any(), domain.Biz, reaction.Actor{}, []int64{1, 2, 3}).
		Return(summaries, nil).
		AnyTimes()

	t.Run("按净赞排完序再分页", func(t *testing.T) {
		list, total, err := svc.List(context.Background(), ranking.ModeTop, 1, 2, reaction.Actor{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []int64{2, 3}, slice.Map(list, func(_ int, src domain.Portfolio) int64 {
			return src.Id
		}))
		assert.Equal(t, 9, list[0].UpvoteCnt)
	})

	t.Run("第二页", func(t *testing.T) {
		list, total, err := svc.List(context.Background(), ranking.ModeTop, 2, 2, reaction.Actor{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].Id)
	})

	t.Run("翻过头返回空页", func(t *testing.T) {
		list, total, err := svc.List(context.Background(), ranking.ModeTop, 5, 2, reaction.Actor{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, list)
	})

	t.Run("new模式按时间倒序", func(t *testing.T) {
		list, _, err := svc.List(context.Background(), ranking.ModeNew, 1, 3, reaction.Actor{})
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 2, 1}, slice.Map(list, func(_ int, src domain.Portfolio) int64 {
			return src.Id
		}))
	})
}

func TestPortfolioService_Detail(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc, reactionSvc, producer := newTestService(t, repo)
	id, err := svc.Create(context.Background(), domain.Portfolio{Uid: 11, Title: "组合"})
	require.NoError(t, err)
	reactionSvc.EXPECT().
		Get(gomock.Any(), domain.Biz, id, reaction.Actor{}).
		Return(reaction.Summary{Biz: domain.Biz, BizId: id, UpvoteCnt: 2, ViewCnt: 7}, nil)

	res, err := svc.Detail(context.Background(), id, reaction.Actor{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.UpvoteCnt)
	assert.Equal(t, 7, res.ViewCnt)

	// 详情页异步投递一条浏览事件
	select {
	case evt := <-producer.events:
		assert.Equal(t, event.NewViewCntEvent(id, domain.Biz), evt)
	case <-time.After(time.Second):
		t.Fatal("没等到浏览事件")
	}
}
