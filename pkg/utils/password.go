package utils

import "golang.org/x/crypto/bcrypt"

// 工作因子固定为 bcrypt.DefaultCost(10)，与既有散列兼容。
const hashCost = bcrypt.DefaultCost

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
