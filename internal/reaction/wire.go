// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package reaction

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/events"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/cache"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewSummaryCache,
		repository.NewCachedReactionRepository,
		service.NewService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
