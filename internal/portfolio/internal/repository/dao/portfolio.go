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

type Portfolio struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"index"`
	Title       string `gorm:"type:varchar(256)"`
	Description string `gorm:"type:text"`
	ImageUrl    string `gorm:"type:varchar(512)"`
	Ctime       int64
	Utime       int64
}

func (Portfolio) TableName() string {
	return "portfolios"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Portfolio{})
}

type PortfolioDAO interface {
	Create(ctx context.Context, p Portfolio) (int64, error)
	FindById(ctx context.Context, id int64) (Portfolio, error)
	// FindAll 排序交给上层的榜单引擎，这里只保证结果稳定
	FindAll(ctx context.Context) ([]Portfolio, error)
}

type GORMPortfolioDAO struct {
	db *egorm.Component
}

func NewPortfolioDAO(db *egorm.Component) *GORMPortfolioDAO {
	return &GORMPortfolioDAO{
		db: db,
	}
}

func (g *GORMPortfolioDAO) Create(ctx context.Context, p Portfolio) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMPortfolioDAO) FindById(ctx context.Context, id int64) (Portfolio, error) {
	var res Portfolio
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Portfolio{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMPortfolioDAO) FindAll(ctx context.Context) ([]Portfolio, error) {
	var res []Portfolio
	err := g.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}
