package util

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Slugify derives a URL-safe slug from a title: lowercase, with runs of
// non-alphanumeric characters collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var (
	idMu     sync.Mutex
	idLastMs int64
)

// NewID mints a time-derived entity id such as "prod_1710442800000".
// Millisecond timestamps are forced strictly increasing so ids minted in the
// same millisecond stay unique.
func NewID(prefix string) string {
	idMu.Lock()
	ms := time.Now().UnixMilli()
	if ms <= idLastMs {
		ms = idLastMs + 1
	}
	idLastMs = ms
	idMu.Unlock()

	return fmt.Sprintf("%s_%d", prefix, ms)
}
