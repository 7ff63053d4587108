//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		user.InitModule,
		comment.InitModule,
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		reaction.InitModule,
		wire.FieldsOf(new(*reaction.Module), "Hdl"),
		portfolio.InitModule,
		wire.FieldsOf(new(*portfolio.Module), "Hdl"),
		conversation.InitModule,
		wire.FieldsOf(new(*conversation.Module), "Hdl"),
		discussion.InitModule,
		wire.FieldsOf(new(*discussion.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
