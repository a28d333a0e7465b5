package account

import (
	"cmp"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator orders names the way a user expects: case-insensitive and
// locale-aware. A collate.Collator reuses internal buffers, hence the lock.
var collator = struct {
	sync.Mutex
	c *collate.Collator
}{c: collate.New(language.Und, collate.IgnoreCase)}

// CompareNames compares two display names with the shared collator.
func CompareNames(a, b string) int {
	collator.Lock()
	defer collator.Unlock()
	return collator.c.CompareString(a, b)
}

// Compare orders accounts by name. A nil account sorts before any real
// account; two nil accounts are equal. Names that collate equal fall back to
// the id so the order is total.
func Compare(a, b *Account) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := CompareNames(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
