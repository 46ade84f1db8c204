package ecode

// 业务错误码，0表示成功
const (
	Success     = 0
	Unknown     = 10000
	ValidateErr = 10001 // 参数校验失败
	NotFoundErr = 10002 // 资源不存在
	ConflictErr = 10003 // 重复请求
)

var text = map[int]string{
	Success:     "success",
	Unknown:     "unknown error",
	ValidateErr: "validation failed",
	NotFoundErr: "not found",
	ConflictErr: "conflict",
}

// Text 返回错误码的默认描述
func Text(code int) string {
	if s, ok := text[code]; ok {
		return s
	}
	return text[Unknown]
}
