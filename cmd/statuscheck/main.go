// Command statuscheck runs status checks that report through
// outcome.Status and maps the first failure to the process exit code.
//
//	statuscheck check 1 1 0
//	statuscheck --json check 3
package main

import (
	"context"
	"os"
	"os/signal"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("statuscheck")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Errorf("command failed: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "statuscheck",
		Usage: "run status checks and report success or failure",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level for the statuscheck logger",
				EnvVars: []string{"STATUSCHECK_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "json",
				Usage:   "print the report as JSON",
				EnvVars: []string{"STATUSCHECK_JSON"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"STATUSCHECK_NO_COLOR", "NO_COLOR"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "check each STATUS; 0 fails, any other integer succeeds",
				ArgsUsage: "STATUS...",
				Action:    cmdCheck,
			},
		},
	}
}
