package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Station-Manager/logkit/internal/ansi"
	smerrors "github.com/Station-Manager/errors"
)

const maxChainDepth = 50

// link is one error in a cause chain.
type link struct {
	msg string
	op  string
}

// errorChain walks an error's causes, outermost first. DetailedError.Cause
// is preferred over errors.Unwrap; repeated messages end the walk so cycles
// terminate.
func errorChain(err error) []link {
	var chain []link
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, link{msg: dErr.Error(), op: string(dErr.Op())})
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, link{msg: msg})
		err = errors.Unwrap(err)
	}
	return chain
}

// ErrorHistory joins the chain messages with " -> ", outermost first.
func ErrorHistory(err error) string {
	chain := errorChain(err)
	msgs := make([]string, len(chain))
	for i, l := range chain {
		msgs[i] = l.msg
	}
	return strings.Join(msgs, " -> ")
}

// InspectError renders the error type and message followed by one
// "caused by" line per wrapped cause. Operation tags from DetailedError are
// shown in brackets.
func InspectError(color bool, err error) string {
	if err == nil {
		return Inspect(color, nil)
	}

	chain := errorChain(err)
	var b strings.Builder
	b.WriteString(ansi.Wrap(color, ansi.Bold+ansi.Red, fmt.Sprintf("%T", err)))
	for i, l := range chain {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("\n  caused by: ")
		}
		if l.op != "" {
			b.WriteString(ansi.Wrap(color, ansi.BrightBlack, "["+l.op+"]"))
			b.WriteByte(' ')
		}
		b.WriteString(ansi.Wrap(color, ansi.Red, l.msg))
	}
	return b.String()
}
