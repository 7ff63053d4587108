package errs

var (
	SystemError  = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidKind  = ErrorCode{Code: 513002, Msg: "不支持的表态类型"}
	Unauthorized = ErrorCode{Code: 513003, Msg: "请先登录"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
