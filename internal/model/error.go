package model

// Standard error codes surfaced to the view layer
const (
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeCheckoutState   = "INVALID_CHECKOUT_STATE"
	ErrCodeInvalidCatalog  = "INVALID_CATALOG"
)

// DomainError is a typed business-logic error. The view layer matches on
// Code to pick a user-facing message; no domain error is fatal.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and the available stock")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCheckoutNotPending = NewDomainError(ErrCodeCheckoutState, "No checkout is awaiting confirmation")
)
