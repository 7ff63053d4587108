package errs

var (
	SystemError          = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidInput         = ErrorCode{Code: 515002, Msg: "无效的输入"}
	ConversationNotFound = ErrorCode{Code: 515003, Msg: "讨论串不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
