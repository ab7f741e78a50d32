// Package gameid generates sortable identifiers for games, used to
// correlate log lines and simulation results.
package gameid

import (
	"crypto/rand"
	"time"
)

// Crockford's base32 alphabet, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generate creates a new game ID: a UUIDv7 encoded as a 26-character
// base32 string. IDs sort by creation time.
func Generate() string {
	var uuid [16]byte

	// 48-bit millisecond timestamp up front, random tail.
	now := time.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if _, err := rand.Read(uuid[6:]); err != nil {
		panic("gameid: failed to read random bytes: " + err.Error())
	}

	// Version 7, variant 10.
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encodeBase32(uuid)
}

// encodeBase32 packs 128 bits into 26 base32 characters, zero-padding
// the trailing bits.
func encodeBase32(uuid [16]byte) string {
	var out [26]byte

	var acc uint64
	bits := 0
	pos := 0
	for _, b := range uuid {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out[pos] = alphabet[(acc>>uint(bits))&0x1f]
			pos++
		}
	}
	if bits > 0 {
		out[pos] = alphabet[(acc<<uint(5-bits))&0x1f]
	}
	return string(out[:])
}
