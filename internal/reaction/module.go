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

package reaction

import (
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/events"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/service"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	C   *events.Consumer
}

type Handler = web.Handler
type Service = service.ReactionService
type Summary = domain.Summary
type Actor = domain.Actor
type Kind = domain.Kind

const (
	KindNone     = domain.KindNone
	KindLike     = domain.KindLike
	KindDislike  = domain.KindDislike
	KindUpvote   = domain.KindUpvote
	KindDownvote = domain.KindDownvote
)

var (
	ErrAuthRequired = service.ErrAuthRequired
	ErrInvalidKind  = service.ErrInvalidKind
)
