package digest_test

import (
	"crypto/sha256"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ashr123/hash-verifier/digest"
)

var _ = Describe("Digest", func() {
	var algorithm digest.Algorithm

	BeforeEach(func() {
		algorithm = digest.NewAlgorithm("sha256", sha256.New)
	})

	Describe("Hex", func() {
		It("encodes lowercase hex", func() {
			d := digest.NewDigest(algorithm, []byte{0xde, 0xad, 0xbe, 0xef})
			Expect(d.Hex()).To(Equal("deadbeef"))
		})

		It("encodes a zero-length digest as an empty string", func() {
			d := digest.NewDigest(algorithm, nil)
			Expect(d.Hex()).To(Equal(""))
		})
	})

	Describe("ParseHexDigest", func() {
		It("round-trips through Hex", func() {
			sum := []byte{0x00, 0x01, 0xfe, 0xff}
			d := digest.NewDigest(algorithm, sum)

			parsed, err := digest.ParseHexDigest(algorithm, d.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed.Bytes()).To(Equal(sum))
		})

		It("accepts an empty string as a zero-length digest", func() {
			parsed, err := digest.ParseHexDigest(algorithm, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed.Bytes()).To(BeEmpty())
		})

		It("rejects odd-length strings", func() {
			_, err := digest.ParseHexDigest(algorithm, "abc")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Parsing hex digest 'abc'"))
		})

		It("rejects non-hex characters", func() {
			_, err := digest.ParseHexDigest(algorithm, "zzzz")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Parsing hex digest 'zzzz'"))
		})
	})

	Describe("Matches", func() {
		It("is true for identical bytes", func() {
			a := digest.NewDigest(algorithm, []byte{1, 2, 3})
			b := digest.NewDigest(algorithm, []byte{1, 2, 3})
			Expect(a.Matches(b)).To(BeTrue())
		})

		It("is false for differing bytes", func() {
			a := digest.NewDigest(algorithm, []byte{1, 2, 3})
			b := digest.NewDigest(algorithm, []byte{1, 2, 4})
			Expect(a.Matches(b)).To(BeFalse())
		})

		It("is false for differing lengths", func() {
			a := digest.NewDigest(algorithm, []byte{1, 2, 3})
			b := digest.NewDigest(algorithm, []byte{1, 2})
			Expect(a.Matches(b)).To(BeFalse())
		})
	})

	Describe("String", func() {
		It("prefixes the hex with the algorithm name", func() {
			d := digest.NewDigest(algorithm, []byte{0xab})
			Expect(d.String()).To(Equal("sha256:ab"))
		})
	})
})
