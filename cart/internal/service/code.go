package service

import (
	"crypto/rand"
	"fmt"
)

const (
	cartCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	cartCodeLength   = 6
)

func NewCartCode() (string, error) {
	buf := make([]byte, cartCodeLength)
	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("failed generating cart code with error=%w", err)
	}
	for i, b := range buf {
		buf[i] = cartCodeAlphabet[int(b)%len(cartCodeAlphabet)]
	}
	return string(buf), nil
}
