package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/domain"
	"github.com/pkg/errors"
)

type SummaryCache interface {
	SetSummary(ctx context.Context, summary domain.Summary) error
	GetSummary(ctx context.Context, biz string, bizId int64) (domain.Summary, error)
	DelSummary(ctx context.Context, biz string, bizId int64) error
}

const (
	expiration = 10 * time.Minute
)

var (
	ErrSummaryNotFound = errors.New("计数汇总没找到")
)

type summaryCache struct {
	ec ecache.Cache
}

func NewSummaryCache(ec ecache.Cache) SummaryCache {
	return &summaryCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "reaction:",
		},
	}
}

func (c *summaryCache) SetSummary(ctx context.Context, summary domain.Summary) error {
	// 缓存里只放公共计数，访问者自己的表态是按人算的
	summary.ViewerKind = domain.KindNone
	bytes, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "序列化计数汇总失败")
	}
	return c.ec.Set(ctx, c.summaryKey(summary.Biz, summary.BizId), string(bytes), expiration)
}

func (c *summaryCache) GetSummary(ctx context.Context, biz string, bizId int64) (domain.Summary, error) {
	val := c.ec.Get(ctx, c.summaryKey(biz, bizId))
	if val.KeyNotFound() {
		return domain.Summary{}, ErrSummaryNotFound
	}
	if val.Err != nil {
		return domain.Summary{}, val.Err
	}
	var res domain.Summary
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化计数汇总失败")
}

func (c *summaryCache) DelSummary(ctx context.Context, biz string, bizId int64) error {
	_, err := c.ec.Delete(ctx, c.summaryKey(biz, bizId))
	return err
}

func (c *summaryCache) summaryKey(biz string, bizId int64) string {
	return fmt.Sprintf("summary:%s:%d", biz, bizId)
}
