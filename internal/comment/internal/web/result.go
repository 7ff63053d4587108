package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/stocktalk/internal/comment/internal/errs"
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
	notFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)
