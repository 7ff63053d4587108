// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package user

import (
	"github.com/ecodeclub/stocktalk/internal/user/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	userDAO, err := initUserDAO(db)
	if err != nil {
		return nil, err
	}
	v := service.NewUserService(userDAO)
	module := &Module{
		Svc: v,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func initUserDAO(db *egorm.Component) (dao.UserDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewUserDAO(db), nil
}
