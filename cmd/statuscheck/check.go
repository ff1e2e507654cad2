package main

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/outcome/internal/apperr"
	"github.com/ib-77/outcome/pkg/outcome"
)

// getStatus fails for status 0 and succeeds otherwise.
func getStatus(status int) outcome.Status[apperr.Error] {
	if status == 0 {
		return outcome.Fail(apperr.New(apperr.CodeUnavailable, "failure result"))
	}
	return outcome.Ok[apperr.Error]()
}

func parseStatus(arg string) outcome.Outcome[int, error] {
	return outcome.TransformError(outcome.FromTuple(strconv.Atoi(arg)), func(err error) error {
		return apperr.Newf(apperr.CodeInvalid, "status %q is not an integer", arg)
	})
}

// check parses arg and runs the status check on it.
func check(arg string) outcome.Status[error] {
	return outcome.AndThen(parseStatus(arg), func(status int) outcome.Status[error] {
		return outcome.TransformError(getStatus(status), func(e apperr.Error) error { return e })
	})
}

func runChecks(args []string) report {
	r := report{Entries: make([]entry, 0, len(args))}
	for _, arg := range args {
		res := check(arg)
		log.Debugw("checked", "input", arg, "outcome", res.String(), "id", res.ID())
		r.add(arg, res)
	}
	return r
}

func cmdCheck(cctx *cli.Context) error {
	args := cctx.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("at least one STATUS is required", int(apperr.CodeInvalid))
	}

	r := runChecks(args)

	var err error
	if cctx.Bool("json") {
		err = writeJSON(cctx.App.Writer, r)
	} else {
		err = writeText(cctx.App.Writer, r)
	}
	if err != nil {
		return err
	}

	if r.Failed > 0 {
		return cli.Exit("", r.exitCode())
	}
	return nil
}
