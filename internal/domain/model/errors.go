package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures of the poll pipeline.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfig
	KindTransport
	KindBadStatus
	KindShape
	KindMissingField
	KindUnknownStatus
	KindDelivery
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindBadStatus:
		return "bad_status"
	case KindShape:
		return "shape"
	case KindMissingField:
		return "missing_field"
	case KindUnknownStatus:
		return "unknown_status"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrConfig        = &Error{Kind: KindConfig}
	ErrTransport     = &Error{Kind: KindTransport}
	ErrBadStatus     = &Error{Kind: KindBadStatus}
	ErrShape         = &Error{Kind: KindShape}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus}
	ErrDelivery      = &Error{Kind: KindDelivery}
)

// Error is a classified pipeline failure.
type Error struct {
	Kind ErrorKind
	// Op names the failed operation, e.g. "fetch status".
	Op string
	// StatusCode is set for KindBadStatus.
	StatusCode int
	// Fields lists the offending keys for KindMissingField and KindUnknownStatus.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
