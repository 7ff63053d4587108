// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package discussion

import (
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/service"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/web"
	"github.com/ecodeclub/stocktalk/internal/reaction"
)

// Injectors from wire.go:

func InitModule(commentModule *comment.Module, reactionModule *reaction.Module) (*Module, error) {
	v := commentModule.Svc
	v2 := reactionModule.Svc
	v3 := service.NewSessions(v, v2)
	v4 := web.NewHandler(v3)
	module := &Module{
		Sessions: v3,
		Hdl:      v4,
	}
	return module, nil
}
