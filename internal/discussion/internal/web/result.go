package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/stocktalk/internal/discussion/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	invalidParentResult = ginx.Result{
		Code: errs.InvalidParent.Code,
		Msg:  errs.InvalidParent.Msg,
	}
	unknownTargetResult = ginx.Result{
		Code: errs.UnknownTarget.Code,
		Msg:  errs.UnknownTarget.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
)
