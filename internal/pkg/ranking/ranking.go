package ranking

import (
	"math"
	"sort"
	"time"
)

// Mode 列表排序模式
type Mode string

const (
	// ModeHot 热门：净赞数随时间衰减
	ModeHot Mode = "hot"
	// ModeNew 最新：按创建时间倒序
	ModeNew Mode = "new"
	// ModeTop 最高：按净赞数倒序
	ModeTop Mode = "top"
	// ModeControversial 争议：赞和踩都多的排前面
	ModeControversial Mode = "controversial"
)

// ParseMode 解析前端传来的排序模式，未知取值回退到热门
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeNew, ModeTop, ModeControversial:
		return Mode(s)
	default:
		return ModeHot
	}
}

// Item 参与排序的最小数据形状，组合和讨论串都满足它
type Item struct {
	ID int64
	// 创建时间，毫秒时间戳
	Ctime     int64
	Upvotes   int
	Downvotes int
}

// Config 热门公式的参数。
// 衰减指数和时间偏移是按这类社区的惯例取的经验值，不是定死的，
// 允许按业务调整，所以放在配置里而不是写死在公式里。
type Config struct {
	// Gravity 衰减指数，越大旧内容掉得越快
	Gravity float64
	// AgeOffset 年龄偏移，单位小时，避免刚发布的内容分母过小
	AgeOffset float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:   1.5,
		AgeOffset: 2,
	}
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Gravity <= 0 {
		cfg.Gravity = DefaultConfig().Gravity
	}
	if cfg.AgeOffset <= 0 {
		cfg.AgeOffset = DefaultConfig().AgeOffset
	}
	return &Engine{cfg: cfg}
}

// Rank 按指定模式排序，返回新切片，不改动入参。
// 四种模式都是全序：任何并列都按 ID 升序打破，
// 这样同一批数据排两次的结果必然一致，与上游返回顺序无关。
func (e *Engine) Rank(items []Item, mode Mode, now time.Time) []Item {
	res := make([]Item, len(items))
	copy(res, items)
	switch mode {
	case ModeNew:
		sort.Slice(res, func(i, j int) bool {
			if res[i].Ctime != res[j].Ctime {
				return res[i].Ctime > res[j].Ctime
			}
			return res[i].ID < res[j].ID
		})
	case ModeTop:
		sort.Slice(res, func(i, j int) bool {
			si, sj := TopScore(res[i]), TopScore(res[j])
			if si != sj {
				return si > sj
			}
			return res[i].ID < res[j].ID
		})
	case ModeControversial:
		sort.Slice(res, func(i, j int) bool {
			si, sj := ControversialScore(res[i]), ControversialScore(res[j])
			if si != sj {
				return si > sj
			}
			return res[i].ID < res[j].ID
		})
	default:
		// 热度和调用时刻相关，同一条目前后两次调用的热度排名可以不同
		sort.Slice(res, func(i, j int) bool {
			si, sj := e.HotScore(res[i], now), e.HotScore(res[j], now)
			if si != sj {
				return si > sj
			}
			return res[i].ID < res[j].ID
		})
	}
	return res
}

// HotScore 净赞数除以年龄的幂：score = (up - down) / (ageInHours + offset)^gravity。
// 年龄以本次调用时刻为基准现算，不做缓存。
func (e *Engine) HotScore(it Item, now time.Time) float64 {
	ageHours := now.Sub(time.UnixMilli(it.Ctime)).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	net := float64(it.Upvotes - it.Downvotes)
	return net / math.Pow(ageHours+e.cfg.AgeOffset, e.cfg.Gravity)
}

// TopScore 净赞数
func TopScore(it Item) int {
	return it.Upvotes - it.Downvotes
}

// ControversialScore min(up, down) * (up + down)。
// 一边为零的条目得零分，哪怕另一边再高：没有分歧就没有争议。
func ControversialScore(it Item) int64 {
	minSide := it.Upvotes
	if it.Downvotes < minSide {
		minSide = it.Downvotes
	}
	return int64(minSide) * int64(it.Upvotes+it.Downvotes)
}
