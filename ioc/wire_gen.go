// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/conversation"
	"github.com/ecodeclub/stocktalk/internal/discussion"
	"github.com/ecodeclub/stocktalk/internal/portfolio"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ecodeclub/stocktalk/internal/user"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	module, err := user.InitModule(v)
	if err != nil {
		return nil, err
	}
	commentModule, err := comment.InitModule(v, module)
	if err != nil {
		return nil, err
	}
	v2 := commentModule.Hdl
	cache := InitCache(cmdable)
	mq := InitMQ()
	reactionModule, err := reaction.InitModule(v, cache, mq)
	if err != nil {
		return nil, err
	}
	v3 := reactionModule.Hdl
	portfolioModule, err := portfolio.InitModule(v, mq, reactionModule)
	if err != nil {
		return nil, err
	}
	v4 := portfolioModule.Hdl
	conversationModule, err := conversation.InitModule(v, reactionModule)
	if err != nil {
		return nil, err
	}
	v5 := conversationModule.Hdl
	discussionModule, err := discussion.InitModule(commentModule, reactionModule)
	if err != nil {
		return nil, err
	}
	v6 := discussionModule.Hdl
	component := initGinxServer(provider, v2, v3, v4, v5, v6)
	app := &App{
		Web: component,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)
