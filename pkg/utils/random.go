package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionID создает уникальный ID подключения (замена UUID для снижения зависимостей)
func NewSessionID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session ID: " + err.Error())
	}
	return "session_" + hex.EncodeToString(b)
}
