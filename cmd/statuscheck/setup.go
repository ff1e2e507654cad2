package main

import (
	"github.com/fatih/color"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

func setup(cctx *cli.Context) error {
	if err := logging.SetLogLevel("statuscheck", cctx.String("log-level")); err != nil {
		return err
	}
	if cctx.Bool("no-color") {
		color.NoColor = true
	}
	return nil
}
