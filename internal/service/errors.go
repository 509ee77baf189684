package service

import "errors"

// 服务层统一错误类型，handler层通过 errors.Is 映射为HTTP状态码
var (
	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("not found")
	// ErrForbidden 调用者没有操作权限
	ErrForbidden = errors.New("forbidden")
	// ErrConflict 与已有记录冲突（重复注册/邀请/好友请求等）
	ErrConflict = errors.New("conflict")
	// ErrValidation 请求内容不合法
	ErrValidation = errors.New("validation failed")
)
