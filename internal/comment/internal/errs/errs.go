package errs

var (
	SystemError      = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 512002, Msg: "评论内容不合法"}
	InvalidParent    = ErrorCode{Code: 512003, Msg: "回复的评论不存在"}
	CommentNotFound  = ErrorCode{Code: 512004, Msg: "评论不存在"}
	PermissionDenied = ErrorCode{Code: 512005, Msg: "无权操作该评论"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
