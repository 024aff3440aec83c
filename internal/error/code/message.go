package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrSessionInvalid:   "会话无效或已过期",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:       "用户不存在",
	ErrUsernameExists:     "用户名已存在",
	ErrEmailExists:        "邮箱已存在",
	ErrInvalidCredentials: "用户名或密码错误",

	// 楼栋相关错误码
	ErrTowerNotFound: "楼栋不存在",

	// 房源相关错误码
	ErrUnitNotFound:    "房源不存在",
	ErrUnitUnavailable: "房源当前不可预订",

	// 配套设施相关错误码
	ErrAmenityNotFound: "配套设施不存在",

	// 预订相关错误码
	ErrBookingNotFound:      "预订记录不存在",
	ErrBookingInvalidStatus: "预订状态不合法",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrSessionInvalid:   StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrUsernameExists:     StatusBadRequest,
	ErrEmailExists:        StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,

	// 楼栋相关错误码
	ErrTowerNotFound: StatusNotFound,

	// 房源相关错误码
	ErrUnitNotFound:    StatusNotFound,
	ErrUnitUnavailable: StatusBadRequest,

	// 配套设施相关错误码
	ErrAmenityNotFound: StatusNotFound,

	// 预订相关错误码
	ErrBookingNotFound:      StatusNotFound,
	ErrBookingInvalidStatus: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
