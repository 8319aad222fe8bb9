// Package diagnostic turns the bare errors the core packages return
// (token.Error, datetime.ParseError) into a located, human-readable
// Report, optionally logged via loggo. It is a presentation layer only:
// nothing here changes what lexer, token, or datetime compute or return.
package diagnostic

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/Flyclops/toml/position"
	"github.com/Flyclops/toml/token"
)

var logger = loggo.GetLogger("toml.diagnostic")

// Report is a located, formatted rendering of a core error.
type Report struct {
	Source  string
	Line    int
	Col     int
	Offset  int
	Message string

	cause error
}

// Error formats the report the way the teacher's own error type does:
// one line naming the source, position, and message.
func (r *Report) Error() string {
	where := r.Source
	if where == "" {
		where = "<input>"
	}
	return fmt.Sprintf("[Error in %s | Line %d Col %d] %s", where, r.Line, r.Col, r.Message)
}

// Cause returns the original error this report was built from.
func (r *Report) Cause() error {
	return r.cause
}

// Stack renders the full causal chain via juju/errors, for callers that
// want more than the one-line Error() summary.
func (r *Report) Stack() string {
	return errors.ErrorStack(r.cause)
}

// NewReport locates err against input (using source as the name to
// report, e.g. a filename), annotates it with juju/errors, and - if
// logging is enabled via SetLogging - emits it at WARNING through loggo.
// err must be non-nil; NewReport panics otherwise, the same contract
// errors.Annotatef has.
func NewReport(err error, input, source string) *Report {
	offset := locate(err)
	line, col := position.Locate(input, offset)
	annotated := errors.Annotatef(err, "in %s", orDefault(source, "<input>"))

	r := &Report{
		Source:  source,
		Line:    line,
		Col:     col,
		Offset:  offset,
		Message: err.Error(),
		cause:   annotated,
	}
	if logger.IsWarningEnabled() {
		logger.Warningf("%s", r.Error())
	}
	return r
}

// locate extracts a byte offset from err, if it carries one. Only
// *token.Error does; anything else (notably datetime.ParseError, which is
// deliberately detail-free) reports offset 0.
func locate(err error) int {
	if te, ok := err.(*token.Error); ok {
		return te.Span.Start
	}
	return 0
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// SetLogging turns the opt-in WARNING logging on or off. It is disabled
// by default, the same posture as the teacher's own debug toggle.
func SetLogging(enabled bool) {
	if enabled {
		logger.SetLogLevel(loggo.WARNING)
	} else {
		logger.SetLogLevel(loggo.UNSPECIFIED)
	}
}
