package apperrors

import (
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status a
// controller should respond with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// Is lets errors.Is match a wrapped sentinel by code and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of the sentinel with the cause attached.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Authentication errors
var (
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrTokenExpired       = New(http.StatusUnauthorized, "Token expired", nil)
)

// Store-level errors
var (
	ErrUserNotFound    = New(http.StatusNotFound, "User not found", nil)
	ErrOrderNotFound   = New(http.StatusNotFound, "Order not found", nil)
	ErrEmailTaken      = New(http.StatusConflict, "Email already registered", nil)
	ErrDatabaseQuery   = New(http.StatusInternalServerError, "Database query error", nil)
	ErrDatabaseConnect = New(http.StatusServiceUnavailable, "Database connection error", nil)
)

// Business logic errors
var (
	ErrItemNotFound   = New(http.StatusNotFound, "Item not in cart", nil)
	ErrEmptyCart      = New(http.StatusBadRequest, "Cart is empty", nil)
	ErrDuplicateOrder = New(http.StatusConflict, "Order already exists for this payment", nil)
	ErrPaymentFailed  = New(http.StatusBadGateway, "Payment provider failure", nil)
	// ErrCartNotCleared reports the partial-completion state where the
	// order was persisted but the cart clear failed. The order id is
	// still returned to the caller so reconciliation can find it.
	ErrCartNotCleared = New(http.StatusInternalServerError, "Order created but cart not cleared", nil)
)

// Validation errors
var (
	ErrInvalidInput = New(http.StatusBadRequest, "Invalid input", nil)
)
