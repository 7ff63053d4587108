package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/stocktalk/internal/conversation/internal/errs"
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
	notFoundResult = ginx.Result{
		Code: errs.ConversationNotFound.Code,
		Msg:  errs.ConversationNotFound.Msg,
	}
)
