package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
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
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
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
	// ErrSessionInvalid - 401: 会话无效或已过期.
	ErrSessionInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUsernameExists - 400: 用户名已存在.
	ErrUsernameExists
	// ErrEmailExists - 400: 邮箱已存在.
	ErrEmailExists
	// ErrInvalidCredentials - 401: 用户名或密码错误.
	ErrInvalidCredentials
)

// 楼栋相关错误码 (102xxx).
const (
	// ErrTowerNotFound - 404: 楼栋不存在.
	ErrTowerNotFound int = iota + 102000
)

// 房源相关错误码 (103xxx).
const (
	// ErrUnitNotFound - 404: 房源不存在.
	ErrUnitNotFound int = iota + 103000
	// ErrUnitUnavailable - 400: 房源当前不可预订.
	ErrUnitUnavailable
)

// 配套设施相关错误码 (104xxx).
const (
	// ErrAmenityNotFound - 404: 配套设施不存在.
	ErrAmenityNotFound int = iota + 104000
)

// 预订相关错误码 (105xxx).
const (
	// ErrBookingNotFound - 404: 预订记录不存在.
	ErrBookingNotFound int = iota + 105000
	// ErrBookingInvalidStatus - 400: 预订状态不合法.
	ErrBookingInvalidStatus
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
