// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/test/ioc"
	"github.com/ecodeclub/stocktalk/internal/user"
)

// Injectors from wire.go:

func InitModule() (*comment.Module, error) {
	v := testioc.InitDB()
	module, err := user.InitModule(v)
	if err != nil {
		return nil, err
	}
	commentModule, err := comment.InitModule(v, module)
	if err != nil {
		return nil, err
	}
	return commentModule, nil
}
