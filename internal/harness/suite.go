// SPDX-License-Identifier: MIT

// Package harness drives the demonstration suite and the timing benchmark
// behind cmd/blockmat.
//
// The suite is a list of Scenarios. Each one builds a few matrices, prints
// them through package render and checks a claim (M·I = M, XY ≠ YX, ...).
// RunSuite never stops at the first failure: it records it and moves on, so
// the Summary always covers the whole list.
package harness

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/render"
)

// Scenario is one named claim about the engine.
type Scenario struct {
	Group string // heading the scenario is printed under
	Name  string
	Claim string // one-line statement printed next to the name
	Run   func(r *Report) error
}

// Summary counts the outcome of a RunSuite call.
type Summary struct {
	Scenarios int
	Checks    int
	Failures  int
	Failed    []string // "Group/Name" of every scenario with a failing check
}

// Passed reports whether every check of every scenario passed.
func (s Summary) Passed() bool { return s.Failures == 0 }

// Report is handed to a running scenario. It renders matrices, records check
// outcomes and keeps the first write error.
type Report struct {
	w       io.Writer
	cfg     render.Config
	err     error
	checks  int
	failed  int
	heading string
}

func (r *Report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// styled wraps s in the escape of style unless the config is plain.
func (r *Report) styled(style render.Style, s string) string {
	if r.cfg.Plain {
		return s
	}
	switch style {
	case render.StyleSuccess:
		return "\x1b[1;32m" + s + "\x1b[0m"
	case render.StyleFailure:
		return "\x1b[1;31m" + s + "\x1b[0m"
	case render.StyleBold:
		return "\x1b[1m" + s + "\x1b[0m"
	default:
		return s
	}
}

// Note prints a free-form line under the current scenario.
func (r *Report) Note(format string, args ...any) {
	r.printf("\t\t‣ %s\n", fmt.Sprintf(format, args...))
}

// Pass records a passing check.
func (r *Report) Pass(label string) {
	r.checks++
	r.printf("\t\t‣ %s %s\n", r.styled(render.StyleSuccess, "Test Passed:"), label)
}

// Fail records a failing check.
func (r *Report) Fail(label string) {
	r.checks++
	r.failed++
	r.printf("\t\t‣ %s %s\n", r.styled(render.StyleFailure, "Test Failed:"), label)
}

// Check records cond as a pass or a failure.
func (r *Report) Check(cond bool, label string) bool {
	if cond {
		r.Pass(label)
	} else {
		r.Fail(label)
	}

	return cond
}

// ExpectError checks that err matches target.
func (r *Report) ExpectError(label string, err, target error) bool {
	if !r.Check(errors.Is(err, target), label) {
		r.Note("got %v, want %v", err, target)
		return false
	}
	r.Note("%v", err)

	return true
}

// Show renders m under a bold label.
func Show[T matrix.Element](r *Report, label string, m *matrix.Dense[T]) {
	r.printf("\t\t‣ %s\n", r.styled(render.StyleBold, label+":"))
	if r.err != nil {
		return
	}
	r.err = render.Fprint[T](r.w, m, r.cfg.WithStyle(render.StyleNone))
}

// Expect compares got against want, records the outcome and renders got in
// the matching style, indented one level deeper than operands.
func Expect[T matrix.Element](r *Report, label string, got, want *matrix.Dense[T]) bool {
	ok := got.Equal(want)
	style := render.StyleSuccess
	if !ok {
		style = render.StyleFailure
	}
	r.Check(ok, label)
	r.printf("\t\t\t◦ %s\n", r.styled(style, label+":"))
	if r.err == nil && got != nil {
		r.err = render.Fprint[T](r.w, got, r.cfg.WithIndent(r.cfg.Indent+8).WithStyle(style))
	}

	return ok
}

// RunSuite runs every scenario in order and writes the report to w.
// A scenario returning an error counts as one failed check; the suite goes on.
// The returned error is the first write error, if any.
func RunSuite(w io.Writer, scenarios []Scenario, cfg render.Config) (Summary, error) {
	var sum Summary
	r := &Report{w: w, cfg: cfg}

	for _, sc := range scenarios {
		if sc.Group != r.heading {
			if r.heading != "" {
				r.printf("\n")
			}
			r.printf("%s\n", r.styled(render.StyleBold, "Testing "+sc.Group+":"))
			r.heading = sc.Group
		}
		r.printf("\t• %s %s\n", r.styled(render.StyleBold, sc.Name+":"), sc.Claim)

		before := r.failed
		r.checks = 0
		if err := sc.Run(r); err != nil {
			r.Fail(fmt.Sprintf("unexpected error: %v", err))
		}
		sum.Scenarios++
		sum.Checks += r.checks
		if r.failed > before {
			sum.Failed = append(sum.Failed, sc.Group+"/"+sc.Name)
		}
	}
	sum.Failures = r.failed

	r.printf("\n")
	if sum.Passed() {
		r.printf("%s\n", r.styled(render.StyleSuccess, "All Tests Passed!"))
	} else {
		r.printf("%s %s\n", r.styled(render.StyleFailure, fmt.Sprintf("%d check(s) failed:", sum.Failures)),
			strings.Join(sum.Failed, ", "))
	}

	return sum, r.err
}
