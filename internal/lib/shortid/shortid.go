// Package shortid выдаёт короткие URL-безопасные идентификаторы пользователей.
package shortid

import (
	"github.com/google/uuid"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_-"
	// Length: 10 символов по 6 бит.
	Length = 10
)

// New возвращает новый идентификатор из Length символов alphabet.
func New() string {
	return FromUUID(uuid.New())
}

// FromUUID кодирует 60 бит u по 6 бит на символ: байты 0-5, младшую
// половину байта 6 (старшая занята версией) и байт 7.
func FromUUID(u uuid.UUID) string {
	var bits uint64
	for i := 0; i < 6; i++ {
		bits = bits<<8 | uint64(u[i])
	}
	bits = bits<<4 | uint64(u[6]&0x0f)
	bits = bits<<8 | uint64(u[7])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[bits&0x3f]
		bits >>= 6
	}
	return string(out)
}

