package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

// Digest is the result of running an algorithm over some content.
type Digest struct {
	algorithm Algorithm
	sum       []byte
}

func NewDigest(algorithm Algorithm, sum []byte) Digest {
	return Digest{algorithm: algorithm, sum: sum}
}

// ParseHexDigest builds a Digest from a hex-encoded reference string,
// e.g. one copied from a download page. Odd length or non-hex
// characters are an error; the decoded length is not checked against
// the algorithm's output length.
func ParseHexDigest(algorithm Algorithm, hexSum string) (Digest, error) {
	sum, err := hex.DecodeString(hexSum)
	if err != nil {
		return Digest{}, bosherr.WrapErrorf(err, "Parsing hex digest '%s'", hexSum)
	}

	return NewDigest(algorithm, sum), nil
}

func (d Digest) Algorithm() Algorithm { return d.algorithm }

func (d Digest) Bytes() []byte { return d.sum }

// Hex returns the lowercase hex encoding of the digest.
func (d Digest) Hex() string { return hex.EncodeToString(d.sum) }

// Matches reports whether both digests carry identical bytes. The
// comparison is not constant-time; digests here protect integrity,
// not secrets.
func (d Digest) Matches(other Digest) bool {
	return bytes.Equal(d.sum, other.sum)
}

func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}
