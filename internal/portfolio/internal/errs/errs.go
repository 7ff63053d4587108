package errs

var (
	SystemError       = ErrorCode{Code: 514001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 514002, Msg: "无效的输入"}
	PortfolioNotFound = ErrorCode{Code: 514003, Msg: "组合不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
