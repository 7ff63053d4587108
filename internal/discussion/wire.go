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

package discussion

import (
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/service"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/web"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/google/wire"
)

func InitModule(commentModule *comment.Module, reactionModule *reaction.Module) (*Module, error) {
	wire.Build(
		service.NewSessions,
		web.NewHandler,
		wire.FieldsOf(new(*comment.Module), "Svc"),
		wire.FieldsOf(new(*reaction.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
