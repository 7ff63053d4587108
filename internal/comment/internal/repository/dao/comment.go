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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrInvalidParentID = errors.New("父评论ID非法")
	ErrRecordNotFound  = gorm.ErrRecordNotFound
)

// Comment 表示针对某一资源的评论
type Comment struct {
	ID int64 `gorm:"autoIncrement,primaryKey;comment:'评论自增ID'"`

	Uid int64 `gorm:"not null;index;comment:'评论者'"`

	// 匿名发表，展示时隐去评论者
	Anonymous bool `gorm:"not null;default:false;comment:'是否匿名'"`

	// 评论的对象
	Biz   string `gorm:"type:varchar(128);not null;index:idx_biz_biz_id,priority:1;comment:'业务名称'"`
	BizID int64  `gorm:"type:bigint;not null;index:idx_biz_biz_id,priority:2;comment:'业务内唯一ID'"`

	Content string `gorm:"type:text;not null;comment:'评论的具体内容'"`

	// 可以为 NULL，NULL 代表它自身是根评论。
	// 不设级联删除：删除带回复的评论时保留回复，由评论树把孤儿提升为根展示
	ParentID sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id;comment:'父评论ID'"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 创建评论。回复必须指向同一对象下已存在的评论
	Create(ctx context.Context, comment Comment) (Comment, error)
	// FindBySubject 查找某一对象下的全量评论，按ID升序。
	// 评论树在内存里组装，所以这里一次取全
	FindBySubject(ctx context.Context, biz string, bizID int64) ([]Comment, error)
	// CountBySubject 统计某一对象下的评论总数
	CountBySubject(ctx context.Context, biz string, bizID int64) (int64, error)
	// FindByID 根据评论ID查找评论
	FindByID(ctx context.Context, id int64) (Comment, error)
	// Delete 硬删除单条评论，不动它的回复
	Delete(ctx context.Context, id int64) error
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (Comment, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.ParentID.Valid {
			var parent Comment
			if err := tx.First(&parent, "id = ?", c.ParentID.V).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			// 回复不能跨对象，否则另一个对象的评论树里会凭空多出孤儿
			if parent.Biz != c.Biz || parent.BizID != c.BizID {
				return fmt.Errorf("%w: 父评论属于其它对象", ErrInvalidParentID)
			}
		}
		return tx.Create(&c).Error
	})
	return c, err
}

func (g *commentDAO) FindBySubject(ctx context.Context, biz string, bizID int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, bizID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountBySubject(ctx context.Context, biz string, bizID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("biz = ? AND biz_id = ?", biz, bizID).
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (g *commentDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Comment{}).Error
}
