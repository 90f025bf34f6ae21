package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword 生成密码摘要（bcrypt，带盐）
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword 校验明文密码与存储摘要是否匹配
// 兼容旧版系统导入的 SHA-256 摘要，仅用于存量账号的迁移过渡期校验
func CheckPassword(plaintext, digest string) bool {
	if IsLegacyDigest(digest) {
		legacy := LegacyHashPassword(plaintext)
		return subtle.ConstantTimeCompare([]byte(legacy), []byte(digest)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// LegacyHashPassword 旧版系统的无盐 SHA-256 摘要
// 只用于校验历史数据，新账号一律使用 bcrypt
func LegacyHashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// IsLegacyDigest 判断存储的摘要是否为旧版 SHA-256 十六进制格式
func IsLegacyDigest(digest string) bool {
	if len(digest) != 64 {
		return false
	}
	for _, ch := range digest {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		default:
			return false
		}
	}
	return true
}
