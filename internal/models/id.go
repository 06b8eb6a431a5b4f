package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// IDLength is the length of a hex document id.
const IDLength = 24

// NewID returns a 24-character hex id: 4 bytes of big-endian unix seconds followed by 8 random bytes.
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic("models: reading random bytes: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}

// IsValidID reports whether s looks like an id produced by NewID.
func IsValidID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
