package concurrency

import (
	"hash/crc32"
	"sync"
)

const (
	defaultStripeCount int = 16
)

// StripedLock is a fixed pool of mutexes indexed by key hash. It bounds lock
// memory for an unbounded key space at the cost of occasional false sharing
// between keys that land on the same stripe.
type StripedLock struct {
	stripeCount int
	locks       []sync.Mutex
}

func NewStripedLock(numStripes int) *StripedLock {
	count := numStripes
	if count <= 0 {
		count = defaultStripeCount
	}
	return &StripedLock{
		stripeCount: count,
		locks:       make([]sync.Mutex, count),
	}
}

// Lock acquires the stripe for the given key and returns the matching
// unlock function.
func (s *StripedLock) Lock(key string) func() {
	idx := s.hash(key)
	s.locks[idx].Lock()
	return s.locks[idx].Unlock
}

func (s *StripedLock) hash(key string) int {
	hashSum := crc32.ChecksumIEEE([]byte(key))
	return int(hashSum) % s.stripeCount
}
