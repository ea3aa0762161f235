package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a case-insensitive Icelandic collator. Collators keep
// internal buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Icelandic, collate.IgnoreCase)
}

// sortByName stable-sorts n items by the name returned for each index
func sortByName(n int, name func(i int) string, swap func(i, j int)) {
	c := newCollator()
	keys := make([]string, n)
	for i := range keys {
		keys[i] = name(i)
	}
	sort.Stable(&nameSorter{keys: keys, swap: swap, c: c})
}

type nameSorter struct {
	keys []string
	swap func(i, j int)
	c    *collate.Collator
}

func (s *nameSorter) Len() int { return len(s.keys) }

func (s *nameSorter) Less(i, j int) bool {
	return s.c.CompareString(s.keys[i], s.keys[j]) < 0
}

func (s *nameSorter) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.swap(i, j)
}
