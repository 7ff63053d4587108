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
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	reactionmocks "github.com/ecodeclub/stocktalk/internal/reaction/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRepo struct {
	conversations []domain.Conversation
	nextId        int64
}

func (f *fakeRepo) Create(_ context.Context, c domain.Conversation) (int64, error) {
	f.nextId++
	c.Id = f.nextId
	f.conversations = append(f.conversations, c)
	return c.Id, nil
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.Conversation, error) {
	for _, c := range f.conversations {
		if c.Id == id {
			return c, nil
		}
	}
	return domain.Conversation{}, repository.ErrRecordNotFound
}

func (f *fakeRepo) FindAll(_ context.Context) ([]domain.Conversation, error) {
	res := make([]domain.Conversation, len(f.conversations))
	copy(res, f.conversations)
	return res, nil
}

func newTestService(t *testing.T, repo *fakeRepo) (ConversationService, *reactionmocks.MockReactionService) {
	ctrl := gomock.NewController(t)
	reactionSvc := reactionmocks.NewMockReactionService(ctrl)
	return NewService(repo, reactionSvc, ranking.NewEngine(ranking.DefaultConfig())), reactionSvc
}

func TestConversationService_Create(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, &fakeRepo{})
	_, err := svc.Create(context.Background(), domain.Conversation{Title: " \t "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	id, err := svc.Create(context.Background(), domain.Conversation{
		Uid:    11,
		Title:  "白酒板块怎么看",
		Ticker: "600519",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestConversationService_List_HotDecay(t *testing.T) {
	t.Parallel()
	now := time.Now()
	repo := &fakeRepo{
		conversations: []domain.Conversation{
			// 两个串净赞相同，新的那个要排前面
			{Id: 1, Title: "旧串", Ctime: now.Add(-20 * time.Hour).UnixMilli()},
			{Id: 2, Title: "新串", Ctime: now.Add(-2 * time.Hour).UnixMilli()},
		},
		nextId: 2,
	}
	svc, reactionSvc := newTestService(t, repo)
	reactionSvc.EXPECT().
		GetByIds(gomock.Any(), domain.Biz, reaction.Actor{}, []int64{1, 2}).
		Return([]reaction.Summary{
			{Biz: domain.Biz, BizId: 1, UpvoteCnt: 3, DownvoteCnt: 1},
			{Biz: domain.Biz, BizId: 2, UpvoteCnt: 3, DownvoteCnt: 1},
		}, nil)

	list, total, err := svc.List(context.Background(), ranking.ModeHot, 1, 10, reaction.Actor{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{2, 1}, slice.Map(list, func(_ int, src domain.Conversation) int64 {
		return src.Id
	}))
}

func TestConversationService_Vote(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc, reactionSvc := newTestService(t, repo)
	id, err := svc.Create(context.Background(), domain.Conversation{Uid: 11, Title: "串"})
	require.NoError(t, err)
	actor := reaction.Actor{Uid: 12}

	_, err = svc.Vote(context.Background(), id, actor, reaction.KindDislike)
	assert.ErrorIs(t, err, ErrInvalidVote)

	_, err = svc.Vote(context.Background(), 42, actor, reaction.KindDownvote)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	reactionSvc.EXPECT().
		Toggle(gomock.Any(), domain.Biz, id, actor, reaction.KindDownvote).
		Return(reaction.Summary{Biz: domain.Biz, BizId: id, DownvoteCnt: 1, ViewerKind: reaction.KindDownvote}, nil)
	summary, err := svc.Vote(context.Background(), id, actor, reaction.KindDownvote)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DownvoteCnt)
}
