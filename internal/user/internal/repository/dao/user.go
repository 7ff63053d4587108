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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Nickname string `gorm:"type:varchar(128)"`
	Avatar   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}

type UserDAO interface {
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type userDAO struct {
	db *egorm.Component
}

func NewUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (g *userDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := g.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (g *userDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var users []User
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}
