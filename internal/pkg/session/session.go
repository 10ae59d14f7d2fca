package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// A cart session is an anonymous, browser-scoped identifier. It attributes
// holds before any account exists, so it carries no claims and is never
// parsed beyond format validation.

const idBytes = 16

var idPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func NewID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}
