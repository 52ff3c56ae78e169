// Package token implements the session-less authentication credential: a
// digest derived from (identity, calendar day, shared secret). Tokens are
// never stored; every trust boundary recomputes the expected value and
// compares. A token implicitly expires at the next UTC day boundary.
package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"
)

// dayFormat truncates the timestamp to a calendar day. The time-of-day
// component must never reach the digest or tokens would not be stable within
// a day.
const dayFormat = "2006-01-02"

// Derive computes the token for an identity on the calendar day of at (UTC).
// Pure and deterministic: same inputs always yield the same hex string.
func Derive(identity, secret string, at time.Time) string {
	day := at.UTC().Format(dayFormat)
	sum := sha256.Sum256([]byte(identity + "|" + day + "|" + secret))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether presented equals the token derived for identity on
// the calendar day of now. Invalid tokens return false, never an error.
// The compare is constant-time; correctness, not timing hardening, is the
// contract here.
func Verify(identity, presented, secret string, now time.Time) bool {
	expected := Derive(identity, secret, now)
	if len(presented) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}
