package s3sig

import (
	"fmt"

	intErrors "github.com/objstore/s3sig/internal/errors"
)

// ConfigError reports an invalid Bucket construction: a
// malformed endpoint, a missing scheme/host, or a bucket name that isn't
// DNS-valid under VirtualHost. It is returned synchronously at
// construction time; no signing is attempted. Cause, when non-nil, is the
// underlying error (e.g. from url.Parse) wrapped with a stack trace via
// internal/errors.
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("s3sig: invalid %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// ParamError reports a violated contract on an Action: a part number out
// of [1, 10000], an expiry out of [1s, 604800s], or an empty object key
// where one is required.
type ParamError struct {
	Param   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("s3sig: invalid %s: %s", e.Param, e.Message)
}

// ParseError reports a malformed or incomplete XML response body: a
// missing required element or an unparseable number/timestamp. Offset is
// the byte offset of the offending element when the XML decoder makes one
// available, or -1 otherwise. Cause, when non-nil, is the underlying
// decode error wrapped with a stack trace via internal/errors.
type ParseError struct {
	Element string
	Offset  int64
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("s3sig: parse %s at offset %d: %s", e.Element, e.Offset, e.Message)
	}
	return fmt.Sprintf("s3sig: parse %s: %s", e.Element, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// IsFatal reports whether err represents a condition the caller should
// never retry without changing its inputs first: a *ConfigError or
// *ParamError from this package, or an internal/errors.Fatal error from
// deeper in the stack. Mirrored on restic's own Fatal/IsFatal split
// (internal/errors), which this package's internal/errors re-implements
// for exactly this purpose.
func IsFatal(err error) bool {
	switch err.(type) {
	case *ConfigError, *ParamError:
		return true
	}
	return intErrors.IsFatal(err)
}
