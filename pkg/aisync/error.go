package aisync

import (
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
)

// Kind discriminates failure classes of the design-sync pipeline so the
// presentation layer can tell retryable failures (transport, quota) from
// non-retryable ones (malformed model output, validation).
type Kind string

const (
	// KindInput marks a rejected request, e.g. a missing message.
	KindInput Kind = "input"

	// KindCredential marks a missing or invalid API credential.
	KindCredential Kind = "credential"

	// KindQuota marks a rate or quota limit from the upstream service.
	KindQuota Kind = "quota"

	// KindTransport marks any other upstream or network failure.
	KindTransport Kind = "transport"

	// KindFormat marks model output that is not the required JSON document.
	KindFormat Kind = "format"

	// KindValidation marks model output that parsed but violated the design
	// payload schema (bad color, stroke width, connection index).
	KindValidation Kind = "validation"
)

// Error is the typed failure raised by the design-sync pipeline.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aisync: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("aisync: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether retrying the same request may succeed.
// Transport and quota failures are transient; everything else is not.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindQuota
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// classifyUpstream maps an error from the generative backend onto the
// taxonomy by inspecting its text for known substrings. Unrecognized errors
// become generic transport failures.
func classifyUpstream(err error) *Error {
	if e, ok := err.(*apierror.APIError); ok {
		err = e.Unwrap()
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "credential"),
		strings.Contains(msg, "unauthenticated"), strings.Contains(msg, "permission"):
		return wrapError(KindCredential, err, "invalid or missing API key")
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource exhausted"), strings.Contains(msg, "limit"):
		return wrapError(KindQuota, err, "API quota exceeded, try again later")
	default:
		return wrapError(KindTransport, err, "AI request failed, try again")
	}
}
