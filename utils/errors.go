package utils

import (
	"errors"
	"fmt"
)

// ErrorKind membedakan kategori kegagalan pada workflow service.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindStore
	KindVerification
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindVerification:
		return "verification"
	default:
		return "unknown"
	}
}

// AppError adalah error bertipe yang dikembalikan semua service.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, boleh nil
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewStoreError(msg string, cause error) *AppError {
	return &AppError{Kind: KindStore, Message: msg, Err: cause}
}

func NewVerificationError(msg string, cause error) *AppError {
	return &AppError{Kind: KindVerification, Message: msg, Err: cause}
}

// KindOf mengembalikan ErrorKind dari sebuah error, KindUnknown jika bukan AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
