package cmd

import (
	"fmt"
	"io"
	"strconv"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/ashr123/hash-verifier/digest"
)

// VerifyHashCmd digests a file and compares the result against a
// caller-supplied hex digest, printing true or false to stdout. The
// reference hash is parsed before any file I/O so a malformed hash
// never triggers a digest pass.
type VerifyHashCmd struct {
	digester digest.FileDigester
	registry digest.Registry
	stdout   io.Writer
	stderr   io.Writer
}

func NewVerifyHashCmd(digester digest.FileDigester, registry digest.Registry, stdout, stderr io.Writer) VerifyHashCmd {
	return VerifyHashCmd{
		digester: digester,
		registry: registry,
		stdout:   stdout,
		stderr:   stderr,
	}
}

func (c VerifyHashCmd) Name() string { return "verify-hash-of-file" }

func (c VerifyHashCmd) Usage() string {
	return "verify-hash-of-file <algorithm> <pathToFile> <hash>"
}

func (c VerifyHashCmd) Run(args []string) error {
	if len(args) != 3 {
		return bosherr.Errorf("Usage: %s", c.Usage())
	}

	algorithm, err := c.registry.Algorithm(args[0])
	if err != nil {
		return err
	}

	expectedDigest, err := digest.ParseHexDigest(algorithm, args[2])
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stderr, "Starting hash verification...")

	fileDigest, err := c.digester.DigestFile(args[1], algorithm)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, strconv.FormatBool(fileDigest.Matches(expectedDigest)))

	return nil
}
