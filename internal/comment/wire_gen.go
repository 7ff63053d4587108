// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package comment

import (
	"github.com/ecodeclub/stocktalk/internal/comment/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/service"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/web"
	"github.com/ecodeclub/stocktalk/internal/user"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, userModule *user.Module) (*Module, error) {
	v := userModule.Svc
	commentDAO, err := initCommentDAO(db)
	if err != nil {
		return nil, err
	}
	commentRepository := repository.NewCommentRepository(commentDAO)
	v2 := service.NewCommentService(v, commentRepository)
	v3 := web.NewHandler(v2)
	module := &Module{
		Svc: v2,
		Hdl: v3,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func initCommentDAO(db *egorm.Component) (dao.CommentDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewCommentGORMDAO(db), nil
}
