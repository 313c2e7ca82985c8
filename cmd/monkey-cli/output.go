package main

import (
	"fmt"
	"io"
	"time"

	"monkey/internal/driver"
	"monkey/internal/errors"
	"monkey/internal/export"
)

// reportResult prints a file's read error or diagnostics to w. It returns true when
// anything was reported.
func reportResult(w io.Writer, r driver.Result, limit int) bool {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
		return true
	}
	if len(r.Diagnostics) == 0 {
		return false
	}
	reporter := errors.NewErrorReporter(r.Path, r.Source)
	fmt.Fprint(w, reporter.FormatAll(r.Diagnostics, limit))
	return true
}

// writeTree prints a parsed file in the configured format. pretty is the fully
// parenthesised rendering; the other formats are export documents.
func writeTree(w io.Writer, format string, r driver.Result, header bool) error {
	if r.Program == nil {
		return nil
	}
	if format == "pretty" {
		if header {
			fmt.Fprintf(w, "==> %s <==\n", r.Path)
		}
		fmt.Fprintln(w, r.Program.String())
		return nil
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	return export.Encode(w, f, export.NewDocument(r.Path, r.Program, r.Diagnostics))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
