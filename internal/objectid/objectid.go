// Package objectid generates and validates the 24-character hex
// identifiers used as primary keys throughout the store.
package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// idLength is the number of hex characters in an object ID: 12 raw bytes,
// a 4-byte big-endian unix timestamp followed by 8 random bytes.
const idLength = 24

// New returns a fresh object ID. The timestamp prefix keeps IDs roughly
// sortable by creation time.
func New() string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(raw[:])
}

// IsValid reports whether id is a syntactically valid object ID:
// exactly 24 hex characters. Pure, no I/O.
func IsValid(id string) bool {
	if len(id) != idLength {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}
