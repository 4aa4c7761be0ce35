package digest

import (
	"crypto/md5" //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4" //nolint:staticcheck
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Registry resolves algorithm names to Algorithms and enumerates what
// this process supports.
type Registry interface {
	Algorithm(name string) (Algorithm, error)
	AlgorithmNames() []string
}

type registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() Registry {
	r := registry{algorithms: map[string]Algorithm{}}

	for name, newHash := range map[string]func() hash.Hash{
		"md4":         md4.New,
		"md5":         md5.New,
		"sha1":        sha1.New,
		"sha224":      sha256.New224,
		"sha256":      sha256.New,
		"sha384":      sha512.New384,
		"sha512":      sha512.New,
		"sha512/224":  sha512.New512_224,
		"sha512/256":  sha512.New512_256,
		"sha3-224":    sha3.New224,
		"sha3-256":    sha3.New256,
		"sha3-384":    sha3.New384,
		"sha3-512":    sha3.New512,
		"blake2b-256": keyless(blake2b.New256),
		"blake2b-384": keyless(blake2b.New384),
		"blake2b-512": keyless(blake2b.New512),
		"blake2s-256": keyless(blake2s.New256),
		"blake3-256":  func() hash.Hash { return blake3.New(32, nil) },
		"ripemd160":   ripemd160.New,
	} {
		r.algorithms[name] = NewAlgorithm(name, newHash)
	}

	return r
}

func (r registry) Algorithm(name string) (Algorithm, error) {
	algorithm, found := r.algorithms[normalizeName(name)]
	if !found {
		return nil, bosherr.Errorf("Unsupported digest algorithm '%s'", name)
	}

	return algorithm, nil
}

// AlgorithmNames returns the canonical algorithm names sorted
// lexicographically, for help and completion text.
func (r registry) AlgorithmNames() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// normalizeName maps spelling variants like 'SHA-256' onto canonical
// registry keys.
func normalizeName(name string) string {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "sha-") {
		name = "sha" + strings.TrimPrefix(name, "sha-")
	}

	return name
}

// The blake2 constructors take an optional MAC key; with a nil key
// they cannot fail.
func keyless(newHash func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newHash(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}
