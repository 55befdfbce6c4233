package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 角色无权访问.
	ErrPermissionDenied
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
	// ErrPasswordMismatch - 400: 两次输入的密码不一致.
	ErrPasswordMismatch
	// ErrInvalidRole - 400: 无效的用户角色.
	ErrInvalidRole
	// ErrSelfDelete - 400: 不能删除自己的账户.
	ErrSelfDelete
)

// 报案相关错误码 (102xxx).
const (
	// ErrReportNotFound - 404: 报案记录不存在.
	ErrReportNotFound int = iota + 102000
	// ErrCaseNotAssigned - 404: 案件未分配给该警员.
	ErrCaseNotAssigned
	// ErrInvalidStatus - 400: 无效的案件状态.
	ErrInvalidStatus
	// ErrAssignFailed - 500: 分配警员失败.
	ErrAssignFailed
)

// 证据相关错误码 (103xxx).
const (
	// ErrEvidenceNotFound - 404: 证据不存在.
	ErrEvidenceNotFound int = iota + 103000
	// ErrNoFilesProvided - 400: 未提供文件.
	ErrNoFilesProvided
	// ErrFileSaveFailed - 500: 文件保存失败.
	ErrFileSaveFailed
)

// 调查日志相关错误码 (104xxx).
const (
	// ErrInvalidLogAction - 400: 无效的调查动作.
	ErrInvalidLogAction int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
