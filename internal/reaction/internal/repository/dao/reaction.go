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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound     = gorm.ErrRecordNotFound
	ErrUnknownKind        = errors.New("不支持的表态类型")
	ErrDuplicatedReaction = errors.New("表态记录重复")
)

type ReactionDAO interface {
	// Toggle 翻转一次表态，返回事务内读出的最新汇总和生效后的表态。
	// 生效表态为空串表示这次翻转把原来的表态取消掉了
	Toggle(ctx context.Context, biz string, bizId int64, actorKey string, kind string) (ReactionSummary, string, error)
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	Get(ctx context.Context, biz string, bizId int64) (ReactionSummary, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]ReactionSummary, error)
	GetActorReaction(ctx context.Context, biz string, bizId int64, actorKey string) (UserReaction, error)
	GetActorReactions(ctx context.Context, biz string, actorKey string, ids []int64) ([]UserReaction, error)
}

type GORMReactionDAO struct {
	db *egorm.Component
}

func NewReactionDAO(db *egorm.Component) *GORMReactionDAO {
	return &GORMReactionDAO{
		db: db,
	}
}

func (g *GORMReactionDAO) Toggle(ctx context.Context, biz string, bizId int64, actorKey string, kind string) (ReactionSummary, string, error) {
	cnt, err := cntColumn(kind)
	if err != nil {
		return ReactionSummary{}, "", err
	}
	var (
		summary   ReactionSummary
		effective string
	)
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ur UserReaction
		err := tx.
			Where("biz = ? AND biz_id = ? AND actor_key = ?", biz, bizId, actorKey).
			First(&ur).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			effective = kind
			err = g.insertReaction(tx, biz, bizId, actorKey, kind, cnt)
		case err != nil:
			return err
		case ur.Kind == kind:
			// 同一种表态再点一次就是取消
			effective = ""
			err = g.deleteReaction(tx, ur, cnt)
		default:
			// 极性切换，旧的减一新的加一，同一个事务里完成
			effective = kind
			err = g.switchReaction(tx, ur, kind, cnt)
		}
		if err != nil {
			return err
		}
		return tx.
			Where("biz = ? AND biz_id = ?", biz, bizId).
			First(&summary).Error
	})
	if err != nil {
		return ReactionSummary{}, "", err
	}
	return summary, effective, nil
}

func (g *GORMReactionDAO) insertReaction(tx *gorm.DB, biz string, bizId int64, actorKey string, kind string, cnt string) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&UserReaction{
		ActorKey: actorKey,
		Biz:      biz,
		BizId:    bizId,
		Kind:     kind,
		Utime:    now,
		Ctime:    now,
	}).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				// 同一个人的并发表态，另一个事务先插进去了
				return ErrDuplicatedReaction
			}
		}
		return err
	}
	summary := ReactionSummary{
		Biz:   biz,
		BizId: bizId,
		Ctime: now,
		Utime: now,
	}
	switch kind {
	case "like":
		summary.LikeCnt = 1
	case "dislike":
		summary.DislikeCnt = 1
	case "upvote":
		summary.UpvoteCnt = 1
	case "downvote":
		summary.DownvoteCnt = 1
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			cnt:     gorm.Expr(fmt.Sprintf("`%s` + 1", cnt)),
			"utime": now,
		}),
	}).Create(&summary).Error
}

func (g *GORMReactionDAO) deleteReaction(tx *gorm.DB, ur UserReaction, cnt string) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&UserReaction{}).
		Where("id = ?", ur.Id).
		Delete(&UserReaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&ReactionSummary{}).
		Where("biz = ? AND biz_id = ?", ur.Biz, ur.BizId).
		Updates(map[string]any{
			cnt:     gorm.Expr(fmt.Sprintf("`%s` - 1", cnt)),
			"utime": now,
		}).Error
}

func (g *GORMReactionDAO) switchReaction(tx *gorm.DB, ur UserReaction, kind string, cnt string) error {
	oldCnt, err := cntColumn(ur.Kind)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	err = tx.Model(&UserReaction{}).
		Where("id = ?", ur.Id).
		Updates(map[string]any{
			"kind":  kind,
			"utime": now,
		}).Error
	if err != nil {
		return err
	}
	return tx.Model(&ReactionSummary{}).
		Where("biz = ? AND biz_id = ?", ur.Biz, ur.BizId).
		Updates(map[string]any{
			oldCnt:  gorm.Expr(fmt.Sprintf("`%s` - 1", oldCnt)),
			cnt:     gorm.Expr(fmt.Sprintf("`%s` + 1", cnt)),
			"utime": now,
		}).Error
}

func (g *GORMReactionDAO) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&ReactionSummary{
		Biz:     biz,
		BizId:   bizId,
		ViewCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMReactionDAO) Get(ctx context.Context, biz string, bizId int64) (ReactionSummary, error) {
	var res ReactionSummary
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, bizId).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ReactionSummary{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMReactionDAO) GetByIds(ctx context.Context, biz string, ids []int64) ([]ReactionSummary, error) {
	var res []ReactionSummary
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id IN ?", biz, ids).
		Find(&res).Error
	return res, err
}

func (g *GORMReactionDAO) GetActorReaction(ctx context.Context, biz string, bizId int64, actorKey string) (UserReaction, error) {
	var res UserReaction
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND actor_key = ?", biz, bizId, actorKey).
		First(&res).Error
	return res, err
}

func (g *GORMReactionDAO) GetActorReactions(ctx context.Context, biz string, actorKey string, ids []int64) ([]UserReaction, error) {
	var res []UserReaction
	err := g.db.WithContext(ctx).
		Model(&UserReaction{}).
		Where("biz = ? AND biz_id IN ? AND actor_key = ?", biz, ids, actorKey).
		Scan(&res).Error
	return res, err
}

func cntColumn(kind string) (string, error) {
	switch kind {
	case "like":
		return "like_cnt", nil
	case "dislike":
		return "dislike_cnt", nil
	case "upvote":
		return "upvote_cnt", nil
	case "downvote":
		return "downvote_cnt", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
