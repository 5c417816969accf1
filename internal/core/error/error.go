package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is used when a Redis key does not exist.
	RedisNotFoundMessage = "redis key not found"
	// LoadErrorMessage replaces the catalog when the source cannot be fetched.
	LoadErrorMessage = "Error loading products."
	// NoProductsMessage is shown when the source parsed to zero products.
	NoProductsMessage = "No products found."
	// EmptyCartMessage rejects a checkout attempt on an empty cart.
	EmptyCartMessage = "Cart is empty"
)

var (
	ErrFetchFailed     = errors.New("catalog fetch failed")
	ErrNoProducts      = errors.New("catalog has no products")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// WrapFetch marks a source failure as a catalog load error. The original
// cause stays reachable through errors.Is.
func WrapFetch(err error) error {
	if err == nil {
		return nil
	}
	return New(fmt.Errorf("%w: %w", ErrFetchFailed, err), http.StatusBadGateway, LoadErrorMessage)
}

// EmptyCatalog reports a source that parsed to zero products.
func EmptyCatalog() error {
	return New(ErrNoProducts, http.StatusNotFound, NoProductsMessage)
}

// EmptyCart rejects a checkout on a cart without entries.
func EmptyCart() error {
	return New(ErrEmptyCart, http.StatusBadRequest, EmptyCartMessage)
}

// OutOfRange reports a cart or catalog position outside [0, length).
func OutOfRange(what string, index, length int) error {
	return New(
		fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndexOutOfRange, what, index, length),
		http.StatusBadRequest,
		"invalid "+what,
	)
}

// NotFound reports an unknown product identifier.
func NotFound(id string) error {
	return New(fmt.Errorf("%w: %s", ErrProductNotFound, id), http.StatusNotFound, "product not found")
}

// StatusOf returns the HTTP status carried by err, or 500 when it carries none.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
