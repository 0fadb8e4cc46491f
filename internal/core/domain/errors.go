package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. The HTTP status each kind maps to is
// decided at the transport boundary (internal/api), never here.
type Kind int

const (
	// KindInternal is an unexpected failure; its detail is logged, not exposed.
	KindInternal Kind = iota
	// KindValidation is a request-field validation failure.
	KindValidation
	// KindInvalidCredentials is a failed login (unknown user or wrong password,
	// deliberately indistinguishable).
	KindInvalidCredentials
	// KindTokenMissing means no bearer token was supplied.
	KindTokenMissing
	// KindTokenInvalid means the token failed signature or structure checks.
	KindTokenInvalid
	// KindTokenExpired means the token is past its expiration timestamp.
	KindTokenExpired
	// KindAccountInactive means the credentials are correct but the account is disabled.
	KindAccountInactive
	// KindForbidden means the authenticated role is not in the route's allow-list.
	KindForbidden
	// KindNotFound means a lookup by identifier yielded no row.
	KindNotFound
	// KindConstraint is a business-rule violation raised by the store as a
	// numbered error; its message is safe to pass through to the caller.
	KindConstraint
)

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. Message and Data are client-facing for
// non-internal kinds; Err carries the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Data    any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation wraps field-level failures. The handler never runs when this
// is returned from binding/validation.
func NewValidation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Data: fields}
}

// NewInvalidCredentials uses one fixed message for both unknown-user and
// wrong-password failures to prevent username enumeration.
func NewInvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}
}

func NewTokenMissing() *Error {
	return &Error{Kind: KindTokenMissing, Message: "missing authorization header"}
}

func NewTokenInvalid(err error) *Error {
	return &Error{Kind: KindTokenInvalid, Message: "invalid token", Err: err}
}

func NewTokenExpired() *Error {
	return &Error{Kind: KindTokenExpired, Message: "token expired"}
}

func NewAccountInactive() *Error {
	return &Error{Kind: KindAccountInactive, Message: "User account is inactive"}
}

func NewForbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "insufficient permissions"}
}

func NewNotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// NewConstraint carries a store-raised business-rule message through to the
// caller verbatim.
func NewConstraint(message string, err error) *Error {
	return &Error{Kind: KindConstraint, Message: message, Err: err}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Plain errors report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
