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

package dao

// ReactionSummary 计数汇总表
type ReactionSummary struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	BizId       int64  `gorm:"uniqueIndex:biz_type_id"`
	Biz         string `gorm:"type:varchar(128);uniqueIndex:biz_type_id"`
	LikeCnt     int
	DislikeCnt  int
	UpvoteCnt   int
	DownvoteCnt int
	ViewCnt     int
	Utime       int64
	Ctime       int64
}

// UserReaction 表态明细表。
// 同一个身份在同一个对象上至多一条记录，极性互斥靠这条唯一索引兜底
type UserReaction struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	ActorKey string `gorm:"type:varchar(128);uniqueIndex:actor_biz_type_id"`
	BizId    int64  `gorm:"uniqueIndex:actor_biz_type_id"`
	Biz      string `gorm:"type:varchar(128);uniqueIndex:actor_biz_type_id"`
	Kind     string `gorm:"type:varchar(16)"`
	Utime    int64
	Ctime    int64
}
