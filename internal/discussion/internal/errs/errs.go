package errs

var (
	SystemError   = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidInput  = ErrorCode{Code: 516002, Msg: "无效的输入"}
	InvalidParent = ErrorCode{Code: 516003, Msg: "回复的评论不在当前视图里"}
	UnknownTarget = ErrorCode{Code: 516004, Msg: "表态对象不在当前视图里"}
	Unauthorized  = ErrorCode{Code: 516005, Msg: "请先登录"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
