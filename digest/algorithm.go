package digest

import (
	"hash"
)

// Algorithm names a digest algorithm and creates fresh accumulators
// for it. Accumulators are hash.Hash values; each digest computation
// gets its own and never reuses it.
type Algorithm interface {
	String() string
	NewHash() hash.Hash
}

type algorithm struct {
	name    string
	newHash func() hash.Hash
}

func NewAlgorithm(name string, newHash func() hash.Hash) Algorithm {
	return algorithm{name: name, newHash: newHash}
}

func (a algorithm) String() string { return a.name }

func (a algorithm) NewHash() hash.Hash { return a.newHash() }
