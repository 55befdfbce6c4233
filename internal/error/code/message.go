package code

// 错误码消息映射（对外的 error 文案，与前端约定保持英文）
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "Success",
	ErrUnknown:          "Internal server error",
	ErrBind:             "Invalid request parameters",
	ErrValidation:       "All fields are required",
	ErrTokenInvalid:     "Unauthorized",
	ErrPermissionDenied: "Unauthorized",

	// 用户相关错误码
	ErrUserNotFound:          "User not found",
	ErrUserAlreadyExist:      "User already exists",
	ErrUserPasswordIncorrect: "Invalid credentials",
	ErrPasswordMismatch:      "Passwords do not match",
	ErrInvalidRole:           "Invalid role",
	ErrSelfDelete:            "Cannot delete your own account",

	// 报案相关错误码
	ErrReportNotFound:  "Report not found",
	ErrCaseNotAssigned: "Case not found or not assigned to you",
	ErrInvalidStatus:   "Invalid status value",
	ErrAssignFailed:    "Failed to assign officer",

	// 证据相关错误码
	ErrEvidenceNotFound: "Evidence not found",
	ErrNoFilesProvided:  "No files provided",
	ErrFileSaveFailed:   "Failed to save file",

	// 调查日志相关错误码
	ErrInvalidLogAction: "Invalid log action",

	// 数据库相关错误码
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrPasswordMismatch:      StatusBadRequest,
	ErrInvalidRole:           StatusBadRequest,
	ErrSelfDelete:            StatusBadRequest,

	// 报案相关错误码
	ErrReportNotFound:  StatusNotFound,
	ErrCaseNotAssigned: StatusNotFound,
	ErrInvalidStatus:   StatusBadRequest,
	ErrAssignFailed:    StatusInternalServerError,

	// 证据相关错误码
	ErrEvidenceNotFound: StatusNotFound,
	ErrNoFilesProvided:  StatusBadRequest,
	ErrFileSaveFailed:   StatusInternalServerError,

	// 调查日志相关错误码
	ErrInvalidLogAction: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
