package cmd

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

type Runner interface {
	Run(args []string) error
}

type runner struct {
	factory Factory
}

func NewRunner(factory Factory) Runner {
	return runner{factory: factory}
}

func (r runner) Run(args []string) error {
	if len(args) == 0 {
		return bosherr.Error("Missing command name")
	}

	cmd, err := r.factory.Create(args[0])
	if err != nil {
		return err
	}

	return cmd.Run(args[1:])
}
