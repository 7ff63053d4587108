// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package portfolio

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/event"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/service"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/web"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, reactionModule *reaction.Module) (*Module, error) {
	portfolioDAO, err := initPortfolioDAO(db)
	if err != nil {
		return nil, err
	}
	portfolioRepository := repository.NewPortfolioRepository(portfolioDAO)
	v := reactionModule.Svc
	engine := initRankingEngine()
	reactionEventProducer, err := event.NewReactionEventProducer(q)
	if err != nil {
		return nil, err
	}
	v2 := service.NewService(portfolioRepository, v, engine, reactionEventProducer)
	v3 := web.NewHandler(v2)
	module := &Module{
		Svc: v2,
		Hdl: v3,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func initPortfolioDAO(db *egorm.Component) (dao.PortfolioDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewPortfolioDAO(db), nil
}

func initRankingEngine() *ranking.Engine {
	return ranking.NewEngine(ranking.Config{
		Gravity:   econf.GetFloat64("ranking.gravity"),
		AgeOffset: econf.GetFloat64("ranking.ageOffset"),
	})
}
