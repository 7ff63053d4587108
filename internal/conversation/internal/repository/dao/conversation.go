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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Conversation struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Uid     int64  `gorm:"index"`
	Title   string `gorm:"type:varchar(256)"`
	Content string `gorm:"type:text"`
	Ticker  string `gorm:"type:varchar(32);index"`
	Ctime   int64
	Utime   int64
}

func (Conversation) TableName() string {
	return "conversations"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Conversation{})
}

type ConversationDAO interface {
	Create(ctx context.Context, c Conversation) (int64, error)
	FindById(ctx context.Context, id int64) (Conversation, error)
	FindAll(ctx context.Context) ([]Conversation, error)
}

type GORMConversationDAO struct {
	db *egorm.Component
}

func NewConversationDAO(db *egorm.Component) *GORMConversationDAO {
	return &GORMConversationDAO{
		db: db,
	}
}

func (g *GORMConversationDAO) Create(ctx context.Context, c Conversation) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMConversationDAO) FindById(ctx context.Context, id int64) (Conversation, error) {
	var res Conversation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Conversation{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMConversationDAO) FindAll(ctx context.Context) ([]Conversation, error) {
	var res []Conversation
	err := g.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}
