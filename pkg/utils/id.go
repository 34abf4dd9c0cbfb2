package utils

import "github.com/google/uuid"

// NewID 生成资源主键（UUID v4 字符串）
func NewID() string { return uuid.NewString() }

// IsID 校验路径参数是否为合法 id，避免脏参数打到存储层
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
