package services

import (
	"hash/fnv"
	"sort"
	"sync"
)

const lockStripes = 64

// keyedLocks serializes bookings that touch the same restaurant or the same
// eaters. Keys hash onto a fixed set of stripes; a booking takes every stripe
// its keys land on in ascending order, so two bookings contending on any
// shared key (or shared stripe) cannot interleave their check-then-insert
// sections, and ordered acquisition rules out deadlock.
type keyedLocks struct {
	stripes [lockStripes]sync.Mutex
}

// lock acquires the stripes for keys and returns the matching unlock func.
func (l *keyedLocks) lock(keys ...string) func() {
	seen := make(map[int]bool, len(keys))
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		h := fnv.New32a()
		h.Write([]byte(k))
		i := int(h.Sum32() % lockStripes)
		if !seen[i] {
			seen[i] = true
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)

	for _, i := range idx {
		l.stripes[i].Lock()
	}
	return func() {
		for j := len(idx) - 1; j >= 0; j-- {
			l.stripes[idx[j]].Unlock()
		}
	}
}
