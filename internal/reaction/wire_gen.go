// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package reaction

import (
	"context"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/events"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/cache"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/web"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	reactionDAO, err := InitTablesOnce(db)
	if err != nil {
		return nil, err
	}
	summaryCache := cache.NewSummaryCache(ec)
	reactionRepository := repository.NewCachedReactionRepository(reactionDAO, summaryCache)
	v := service.NewService(reactionRepository)
	v2 := web.NewHandler(v)
	consumer := initConsumer(v, q)
	module := &Module{
		Svc: v,
		Hdl: v2,
		C:   consumer,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) (dao.ReactionDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewReactionDAO(db), nil
}

func initConsumer(svc service.ReactionService, q mq.MQ) *events.Consumer {
	consumer, err := events.NewSyncConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}
