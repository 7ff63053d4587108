// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package conversation

import (
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/service"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/web"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, reactionModule *reaction.Module) (*Module, error) {
	conversationDAO, err := initConversationDAO(db)
	if err != nil {
		return nil, err
	}
	conversationRepository := repository.NewConversationRepository(conversationDAO)
	v := reactionModule.Svc
	engine := initRankingEngine()
	v2 := service.NewService(conversationRepository, v, engine)
	v3 := web.NewHandler(v2)
	module := &Module{
		Svc: v2,
		Hdl: v3,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func initConversationDAO(db *egorm.Component) (dao.ConversationDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewConversationDAO(db), nil
}

func initRankingEngine() *ranking.Engine {
	return ranking.NewEngine(ranking.Config{
		Gravity:   econf.GetFloat64("ranking.gravity"),
		AgeOffset: econf.GetFloat64("ranking.ageOffset"),
	})
}
