package cmd

import (
	"fmt"
	"io"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/ashr123/hash-verifier/digest"
)

// GenerateHashCmd prints the hex digest of a file to stdout. Status
// chatter goes to stderr so stdout stays machine-consumable.
type GenerateHashCmd struct {
	digester digest.FileDigester
	registry digest.Registry
	stdout   io.Writer
	stderr   io.Writer
}

func NewGenerateHashCmd(digester digest.FileDigester, registry digest.Registry, stdout, stderr io.Writer) GenerateHashCmd {
	return GenerateHashCmd{
		digester: digester,
		registry: registry,
		stdout:   stdout,
		stderr:   stderr,
	}
}

func (c GenerateHashCmd) Name() string { return "generate-hash-from-file" }

func (c GenerateHashCmd) Usage() string {
	return "generate-hash-from-file <algorithm> <pathToFile>"
}

func (c GenerateHashCmd) Run(args []string) error {
	if len(args) != 2 {
		return bosherr.Errorf("Usage: %s", c.Usage())
	}

	algorithm, err := c.registry.Algorithm(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stderr, "Generating hash...")

	fileDigest, err := c.digester.DigestFile(args[1], algorithm)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, fileDigest.Hex())

	return nil
}
