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

package portfolio

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/stocktalk/internal/pkg/ranking"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/event"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/repository/dao"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/service"
	"github.com/ecodeclub/stocktalk/internal/portfolio/internal/web"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, reactionModule *reaction.Module) (*Module, error) {
	wire.Build(
		initPortfolioDAO,
		initRankingEngine,
		event.NewReactionEventProducer,
		repository.NewPortfolioRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*reaction.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
