package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/stocktalk/internal/reaction/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidKindResult = ginx.Result{
		Code: errs.InvalidKind.Code,
		Msg:  errs.InvalidKind.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
)
