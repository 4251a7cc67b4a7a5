package gviz

import (
	"fmt"
	"slices"
	"strings"
)

// Reason is the machine-readable cause of a warning or error.
type Reason string

const (
	ReasonDataTruncated             Reason = "data_truncated"
	ReasonNotModified               Reason = "not_modified"
	ReasonUserNotAuthenticated      Reason = "user_not_authenticated"
	ReasonUnknownDataSourceID       Reason = "unknown_data_source_id"
	ReasonAccessDenied              Reason = "access_denied"
	ReasonUnsupportedQueryOperation Reason = "unsupported_query_operation"
	ReasonInvalidQuery              Reason = "invalid_query"
	ReasonInvalidRequest            Reason = "invalid_request"
	ReasonInternalError             Reason = "internal_error"
	ReasonNotSupported              Reason = "not_supported"
	ReasonIllegalFormattingPatterns Reason = "illegal_formatting_patterns"
	ReasonOther                     Reason = "other"
)

var warningReasons = []Reason{
	ReasonDataTruncated,
	ReasonOther,
}

var errorReasons = []Reason{
	ReasonNotModified,
	ReasonUserNotAuthenticated,
	ReasonUnknownDataSourceID,
	ReasonAccessDenied,
	ReasonUnsupportedQueryOperation,
	ReasonInvalidQuery,
	ReasonInvalidRequest,
	ReasonInternalError,
	ReasonNotSupported,
	ReasonIllegalFormattingPatterns,
	ReasonOther,
}

// WarningReasons returns the reasons a warning may carry.
func WarningReasons() []Reason { return slices.Clone(warningReasons) }

// ErrorReasons returns the reasons an error may carry.
func ErrorReasons() []Reason { return slices.Clone(errorReasons) }

// Kind distinguishes warnings from errors.
type Kind string

const (
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Diagnostic is a warning or error reported alongside (or instead of) the
// table.
type Diagnostic struct {
	Kind            Kind
	Reason          Reason
	Message         string
	DetailedMessage string
}

// NewWarning builds a warning. The reason must be one of [WarningReasons].
func NewWarning(reason Reason, message, detailedMessage string) (Diagnostic, error) {
	return newDiagnostic(KindWarning, warningReasons, reason, message, detailedMessage)
}

// NewError builds an error diagnostic. The reason must be one of
// [ErrorReasons].
func NewError(reason Reason, message, detailedMessage string) (Diagnostic, error) {
	return newDiagnostic(KindError, errorReasons, reason, message, detailedMessage)
}

func newDiagnostic(kind Kind, allowed []Reason, reason Reason, message, detailedMessage string) (Diagnostic, error) {
	if !slices.Contains(allowed, reason) {
		return Diagnostic{}, fmt.Errorf("%w: %q is not a valid %s reason", ErrInvalidReason, reason, kind)
	}
	return Diagnostic{
		Kind:            kind,
		Reason:          reason,
		Message:         message,
		DetailedMessage: detailedMessage,
	}, nil
}

// Render returns {reason:'...'[,message:'...'][,detailed_message:'...']}.
func (d Diagnostic) Render() string {
	parts := []string{"reason:" + quote(string(d.Reason))}
	if d.Message != "" {
		parts = append(parts, "message:"+quote(d.Message))
	}
	if d.DetailedMessage != "" {
		parts = append(parts, "detailed_message:"+quote(d.DetailedMessage))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// summary is the one-line text form used by the non-JSON formats.
func (d Diagnostic) summary() string {
	s := string(d.Reason)
	if d.Message != "" {
		s += ": " + d.Message
	}
	if d.DetailedMessage != "" {
		s += " (" + d.DetailedMessage + ")"
	}
	return s
}
