package mapdec

import (
	"context"
	"errors"

	"github.com/mapdec/mapdec/i18n"
	eng "github.com/mapdec/mapdec/internal/engine"
)

// Decode is the primary entry point. It drives one pass over the field
// source, resolving and converting each key against the schema, and returns
// the finished record or the first fatal error. No partial record is ever
// returned.
//
// A decode call is strictly sequential; schema and enum tables are
// read-only, so independent calls over independent sources may run
// concurrently.
func Decode(ctx context.Context, s *RecordSchema, src FieldSource, opts ...DecodeOpt) (Record, error) {
	dm, err := DecodeWithMeta(ctx, s, src, opts...)
	return dm.Value, err
}

// DecodeWithMeta decodes like Decode and additionally reports presence
// metadata: which fields appeared in the source and which were narrowed to
// their defaults.
func DecodeWithMeta(ctx context.Context, s *RecordSchema, src FieldSource, opts ...DecodeOpt) (DecodedRecord, error) {
	var zero DecodedRecord
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	if src == nil {
		return zero, singleIssue(CodeParseError, "nil source")
	}
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	out, pres, err := s.program().Run(src, eng.Options{
		Lenient:              opt.LenientOnTypeError,
		UseDefaultForMissing: opt.UseDefaultForMissing,
		IgnoreUnknown:        opt.IgnoreUnknownFields,
	})
	if err != nil {
		return zero, toIssues(err)
	}

	pm := PresenceMap{"/": PresenceSeen}
	for i, f := range s.fields {
		if pres[i]&eng.PresenceSeen != 0 {
			pm["/"+f.Name] |= PresenceSeen
		}
		if pres[i]&eng.PresenceDefaultApplied != 0 {
			pm["/"+f.Name] |= PresenceDefaultApplied
		}
	}
	return DecodedRecord{Value: Record(out), Presence: pm}, nil
}

// toIssues maps engine errors onto the public Issues model, attaching the
// translated message for the issue code.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{
			Code:    ie.Code,
			Field:   ie.Field,
			Message: i18n.T(ie.Code, nil),
			Hint:    ie.SimpleIssue.Message,
			Params:  ie.Params,
		})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Code: code, Message: i18n.T(code, nil), Hint: msg})
}
