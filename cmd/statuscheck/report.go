package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/valyala/bytebufferpool"

	"github.com/ib-77/outcome/internal/apperr"
	"github.com/ib-77/outcome/pkg/outcome"
)

type entry struct {
	Input string      `json:"input"`
	ID    string      `json:"id"`
	OK    bool        `json:"ok"`
	Error string      `json:"error,omitzero"`
	Code  apperr.Code `json:"code,omitzero"`

	err error
}

type report struct {
	Entries []entry `json:"entries"`
	Failed  int     `json:"failed"`
}

func (r *report) add(input string, res outcome.Status[error]) {
	e := entry{Input: input, ID: res.ID().String(), OK: res.IsSuccess()}
	if err := outcome.Err(res); err != nil {
		e.err = err
		e.Error = err.Error()
		e.Code = apperr.CodeOf(err)
		r.Failed++
	}
	r.Entries = append(r.Entries, e)
}

// exitCode is the code of the first failed entry, 0 when none failed.
func (r report) exitCode() int {
	for _, e := range r.Entries {
		if !e.OK {
			return int(e.Code)
		}
	}
	return 0
}

func writeJSON(w io.Writer, r report) error {
	if err := jsonv2.MarshalWrite(w, r, jsontext.WithIndent("  ")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeText(w io.Writer, r report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	ok := color.New(color.FgGreen).SprintFunc()
	for _, e := range r.Entries {
		if e.OK {
			fmt.Fprintf(buf, "%-10s %s\n", e.Input, ok("success"))
			continue
		}
		var ae apperr.Error
		if errors.As(e.err, &ae) {
			fmt.Fprintf(buf, "%-10s %s\n", e.Input, ae.Diagnostic())
		} else {
			fmt.Fprintf(buf, "%-10s %s\n", e.Input, color.RedString(e.Error))
		}
	}
	fmt.Fprintf(buf, "%d checked, %d failed\n", len(r.Entries), r.Failed)

	_, err := w.Write(buf.B)
	return err
}
