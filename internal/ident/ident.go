// Package ident generates the opaque ids used by every entity collection:
// a base36 millisecond timestamp joined to a short random base36 suffix.
// Collision-resistant, not cryptographically strong.
package ident

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLen = 7
)

func New() string {
	return NewAt(time.Now().UnixMilli())
}

// NewAt builds an id from an explicit millisecond timestamp.
func NewAt(millis int64) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(millis, 36))
	b.WriteByte('-')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}
