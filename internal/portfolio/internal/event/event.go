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

package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/stocktalk/internal/pkg/mqx"
)

const reactionTopic = "reaction_events"

type ReactionEventProducer mqx.Producer[ReactionEvent]

func NewReactionEventProducer(q mq.MQ) (ReactionEventProducer, error) {
	return mqx.NewGeneralProducer[ReactionEvent](q, reactionTopic)
}

type ReactionEvent struct {
	Biz    string `json:"biz,omitempty"`
	BizId  int64  `json:"biz_id,omitempty"`
	Action string `json:"action,omitempty"`
	Uid    int64  `json:"uid,omitempty"`
}

func NewViewCntEvent(id int64, biz string) ReactionEvent {
	return ReactionEvent{
		Biz:    biz,
		BizId:  id,
		Action: "view",
	}
}
