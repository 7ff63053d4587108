// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ecodeclub/stocktalk/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*reaction.Module, error) {
	v := testioc.InitDB()
	cache := testioc.InitCache()
	mq := testioc.InitMQ()
	module, err := reaction.InitModule(v, cache, mq)
	if err != nil {
		return nil, err
	}
	return module, nil
}
