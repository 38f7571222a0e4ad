package policies

import (
	"errors"
	"net/http"
)

// Kind classifies a failure into the four client-visible categories.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

// Error carries a Kind and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrAlreadyEnrolled  = newError(KindValidation, "You are already enrolled in this course!")
	ErrSelfEnroll       = newError(KindValidation, "You cannot enroll in your own course!")
	ErrNotOwner         = newError(KindForbidden, "You do not have permission to modify this course!")
	ErrRoleRequired     = newError(KindForbidden, "You do not have permission to access this resource!")
	ErrNotEnrolled      = newError(KindForbidden, "You are not enrolled in this course!")
	ErrUnauthenticated  = newError(KindUnauthenticated, "Authentication credentials were not provided!")
	ErrCourseNotFound   = newError(KindNotFound, "Course not found!")
	ErrSubjectNotFound  = newError(KindNotFound, "Subject not found!")
	ErrModuleNotFound   = newError(KindNotFound, "Module not found!")
	ErrUserNotFound     = newError(KindNotFound, "User not found!")
	ErrPasswordMismatch = newError(KindValidation, "Password and confirm password do not match!")
	ErrEmailTaken       = newError(KindValidation, "Email is already registered!")
	ErrInvalidOTP       = newError(KindValidation, "Invalid OTP or OTP expired!")
	ErrBadCredentials   = newError(KindUnauthenticated, "Invalid credentials!")
	ErrInactiveAccount  = newError(KindUnauthenticated, "Account is not activated!")
)

// KindOf returns the Kind of err, or KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

// Status maps a Kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
