package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 加盐散列；失败（口令超长）时返回空串，由调用方校验长度兜底
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
