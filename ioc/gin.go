package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/stocktalk/internal/comment"
	"github.com/ecodeclub/stocktalk/internal/conversation"
	"github.com/ecodeclub/stocktalk/internal/discussion"
	"github.com/ecodeclub/stocktalk/internal/pkg/middleware"
	"github.com/ecodeclub/stocktalk/internal/portfolio"
	"github.com/ecodeclub/stocktalk/internal/reaction"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	chdl *comment.Handler,
	rhdl *reaction.Handler,
	phdl *portfolio.Handler,
	cvhdl *conversation.Handler,
	dhdl *discussion.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	chdl.PublicRoutes(res.Engine)
	rhdl.PublicRoutes(res.Engine)
	phdl.PublicRoutes(res.Engine)
	cvhdl.PublicRoutes(res.Engine)
	dhdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	chdl.MemberRoutes(res.Engine)
	rhdl.MemberRoutes(res.Engine)
	phdl.MemberRoutes(res.Engine)
	cvhdl.MemberRoutes(res.Engine)
	dhdl.MemberRoutes(res.Engine)
	return res
}
