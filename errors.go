package mapdec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownField   = "unknown_field"
	CodeDuplicateField = "duplicate_field"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidBase64  = "invalid_base64"
	CodeParseError     = "parse_error"
)

// Issue represents a single decode failure.
type Issue struct {
	Field   string // Name of the offending field; empty when not field-scoped.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: detail such as the offending value or expected type.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"int64",
	// "got":"string"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode errors that implements error. Decoding is
// fail-fast, so a call produces at most one Issue; the slice shape keeps the
// error model open to callers that aggregate across calls.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_field at id
		if it.Field != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Field)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueCode returns the code of the first Issue carried by err, or "" when
// err carries none.
func IssueCode(err error) string {
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		return iss[0].Code
	}
	return ""
}
