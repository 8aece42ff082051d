// Package identity maps Clerk user ids onto UUID-shaped join keys.
//
// The mapping is a salted 32-bit rolling hash, not a cryptographic one, so
// collisions are possible at scale. It is only ever used as a foreign key
// into our own tables, never for security decisions.
package identity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedID is returned for ids that do not carry Clerk's user_
// prefix.
var ErrUnrecognizedID = errors.New("unrecognized user id format")

// clerkIDPrefix is the shape Clerk issues for user identifiers.
const clerkIDPrefix = "user_"

// Four static salts, one per 8-hex-char segment of the output.
var salts = [4]string{"", "sober", "sip", "streak"}

const variantNibbles = "89ab"

// NormalizeUserID deterministically derives a UUID-formatted string from a
// Clerk user id. Same input always yields the same output; the version and
// variant nibbles are forced so the result matches the UUID v4 shape.
func NormalizeUserID(externalID string) (string, error) {
	if !strings.HasPrefix(externalID, clerkIDPrefix) || len(externalID) == len(clerkIDPrefix) {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedID, externalID)
	}

	var b strings.Builder
	for _, salt := range salts {
		fmt.Fprintf(&b, "%08x", rollingHash(externalID+salt))
	}

	raw := []byte(b.String())
	raw[12] = '4'
	raw[16] = variantNibbles[hexVal(raw[16])%4]

	hex := string(raw)
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hex[0:8], hex[8:12], hex[12:16], hex[16:20], hex[20:32]), nil
}

func rollingHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

func hexVal(c byte) int {
	if c >= 'a' {
		return int(c-'a') + 10
	}
	return int(c - '0')
}
