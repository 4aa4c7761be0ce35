package cmd

import (
	"io"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	"github.com/ashr123/hash-verifier/digest"
)

type Factory interface {
	Create(name string) (Cmd, error)
	Cmds() []Cmd
}

type factory struct {
	cmds []Cmd
}

func NewFactory(digester digest.FileDigester, registry digest.Registry, stdout, stderr io.Writer) Factory {
	return factory{
		cmds: []Cmd{
			NewGenerateHashCmd(digester, registry, stdout, stderr),
			NewVerifyHashCmd(digester, registry, stdout, stderr),
		},
	}
}

func (f factory) Create(name string) (Cmd, error) {
	for _, cmd := range f.cmds {
		if cmd.Name() == name {
			return cmd, nil
		}
	}

	return nil, bosherr.Errorf("Unknown command '%s'", name)
}

func (f factory) Cmds() []Cmd {
	return f.cmds
}
