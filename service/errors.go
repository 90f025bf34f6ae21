package service

import "errors"

// 业务错误，调用方（HTTP 层）用 errors.Is 判别并转换为响应
var (
	// ErrDuplicateUsername 用户名已被占用
	ErrDuplicateUsername = errors.New("用户名已存在")
	// ErrInvalidCredentials 用户名或密码错误
	// 用户不存在与密码错误统一返回此错误，避免暴露用户名是否已注册
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrNotFound 记录不存在（含访问他人记录的情况，不泄露记录是否存在）
	ErrNotFound = errors.New("记录不存在")
	// ErrInvalidAmount 金额非法，消费金额必须 >= 0
	ErrInvalidAmount = errors.New("金额不能为负数")
)
