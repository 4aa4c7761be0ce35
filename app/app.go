package app

import (
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/ashr123/hash-verifier/cmd"
	"github.com/ashr123/hash-verifier/digest"
)

const Version = "1.0.0"

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger boshlog.Logger
	fs     boshsys.FileSystem
	stdout io.Writer
	stderr io.Writer

	registry digest.Registry

	// decided during Setup, executed by Run
	action func() error
}

func New(logger boshlog.Logger, fs boshsys.FileSystem, stdout, stderr io.Writer) App {
	return &app{
		logger: logger,
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
	}
}

func (app *app) Setup(args []string) error {
	app.registry = digest.NewRegistry()

	digester := digest.NewFileDigester(app.fs, clock.NewClock(), app.logger)
	factory := cmd.NewFactory(digester, app.registry, app.stdout, app.stderr)
	runner := cmd.NewRunner(factory)

	if len(args) < 2 {
		return bosherr.Errorf("Missing command\n\n%s", app.usage(factory))
	}

	switch args[1] {
	case "-h", "--help", "help":
		usage := app.usage(factory)
		app.action = func() error {
			fmt.Fprint(app.stdout, usage)
			return nil
		}
	case "-v", "--version", "version":
		app.action = func() error {
			fmt.Fprintf(app.stdout, "hash-verifier version %s\n", Version)
			return nil
		}
	default:
		cmdArgs := args[1:]
		app.action = func() error {
			return runner.Run(cmdArgs)
		}
	}

	return nil
}

func (app *app) Run() error {
	return app.action()
}

func (app *app) usage(factory cmd.Factory) string {
	var b strings.Builder

	b.WriteString("Usage: hash-verifier <command> [arguments]\n\n")
	b.WriteString("Commands:\n")

	for _, c := range factory.Cmds() {
		fmt.Fprintf(&b, "  %s\n", c.Usage())
	}

	fmt.Fprintf(&b, "\nAvailable algorithms: %s\n", strings.Join(app.registry.AlgorithmNames(), ", "))

	return b.String()
}
