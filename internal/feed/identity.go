package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// titlePrefixLen bounds how much of a title feeds the identity hash.
// Long titles that agree on this prefix are the same story.
const titlePrefixLen = 120

// Identity derives a stable 16-hex token for a headline. It hashes a
// normalized bounded prefix of the title only, not the source, so the
// same headline syndicated across feeds maps to one identity and is
// alerted at most once.
//
// Two calls with equal normalized titles always produce equal tokens;
// this is what cross-invocation deduplication depends on.
func Identity(title string) string {
	norm := strings.ToUpper(strings.Join(strings.Fields(title), " "))
	if len(norm) > titlePrefixLen {
		norm = norm[:titlePrefixLen]
	}
	sum := sha256.Sum256([]byte(norm))
	return hex.EncodeToString(sum[:])[:16]
}
