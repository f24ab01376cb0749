package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidAmount        = 4002
	CodeInvalidQuantity      = 4003
	CodeInvalidRating        = 4004
	CodeMissingPricing       = 4005
	CodeInvalidTransition    = 4006
	CodeNotPurchasable       = 4007
	CodeInvalidDownloadType  = 4008
	CodeUnauthorized         = 4010
	CodeInvalidCredentials   = 4011
	CodeForbidden            = 4030
	CodeOwnProject           = 4031
	CodeDownloadForbidden    = 4032
	CodeNotFound             = 4040
	CodeConflict             = 4090
	CodeAlreadyPurchased     = 4091
	CodeDuplicateTransaction = 4092
	CodeRateLimited          = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Validation errors (HTTP 400)
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAmount is returned when a money amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidQuantity is returned when a cart quantity is outside [1,10]
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")

	// ErrInvalidRating is returned when a review rating is outside [1,5]
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrMissingPricing is returned when a purchase-path operation hits a project without pricing
	ErrMissingPricing = errors.New("project has no pricing")

	// ErrInvalidStatusTransition is returned for illegal transaction state transitions
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrProjectNotPurchasable is returned when the project status does not permit the action
	ErrProjectNotPurchasable = errors.New("project is not purchasable")

	// ErrInvalidDownloadType is returned when the download type is not full, demo or preview
	ErrInvalidDownloadType = errors.New("invalid download type")

	// ErrInvalidCurrency is returned when the currency is not a supported value
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Authentication errors (HTTP 401)
var (
	// ErrUnauthorized is returned when no valid identity accompanies the request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on signin with a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Authorization errors (HTTP 403)
var (
	// ErrForbidden is returned when the principal's role or ownership check fails
	ErrForbidden = errors.New("forbidden")

	// ErrOwnProject is returned when a seller attempts to buy their own project
	ErrOwnProject = errors.New("cannot purchase your own project")

	// ErrDownloadForbidden is returned when a full download lacks purchase or authorship
	ErrDownloadForbidden = errors.New("full download requires purchase or authorship")
)

// Not-found errors (HTTP 404)
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrProjectNotFound is returned when the requested project doesn't exist
	ErrProjectNotFound = errors.New("project not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCartItemNotFound is returned when a cart mutation targets a missing entry
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrWishlistItemNotFound is returned when a wishlist mutation targets a missing entry
	ErrWishlistItemNotFound = errors.New("wishlist item not found")

	// ErrReviewNotFound is returned when the requested review doesn't exist
	ErrReviewNotFound = errors.New("review not found")
)

// Conflict errors (HTTP 409)
var (
	// ErrAlreadyInCart is returned when the (user, project) pair is already in the cart
	ErrAlreadyInCart = errors.New("project already in cart")

	// ErrAlreadyInWishlist is returned when the (user, project) pair is already wishlisted
	ErrAlreadyInWishlist = errors.New("project already in wishlist")

	// ErrAlreadyReviewed is returned when the user has already reviewed the project
	ErrAlreadyReviewed = errors.New("project already reviewed")

	// ErrAlreadyPurchased is returned when the user is already in the project's buyer set
	ErrAlreadyPurchased = errors.New("project already purchased")

	// ErrDuplicateTransaction is returned when the external transaction ID already exists
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")

	// ErrDuplicateUser is returned when signing up with an email that already exists
	ErrDuplicateUser = errors.New("user already exists")
)

// Rate limiting (HTTP 429)
var (
	// ErrRateLimited is returned when the token bucket for the caller is empty
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Server errors (HTTP 500)
var (
	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidRating):
		return CodeInvalidRating
	case errors.Is(err, ErrMissingPricing):
		return CodeMissingPricing
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrProjectNotPurchasable):
		return CodeNotPurchasable
	case errors.Is(err, ErrInvalidDownloadType):
		return CodeInvalidDownloadType
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrOwnProject):
		return CodeOwnProject
	case errors.Is(err, ErrDownloadForbidden):
		return CodeDownloadForbidden
	case errors.Is(err, ErrAlreadyPurchased):
		return CodeAlreadyPurchased
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case IsValidationError(err):
		return CodeInvalidRequest
	case IsForbiddenError(err):
		return CodeForbidden
	case IsNotFoundError(err):
		return CodeNotFound
	case IsConflictError(err):
		return CodeConflict
	default:
		return CodeInternalServer
	}
}

// IsValidationError checks if the error belongs to the validation class
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidRating) ||
		errors.Is(err, ErrMissingPricing) ||
		errors.Is(err, ErrInvalidStatusTransition) ||
		errors.Is(err, ErrProjectNotPurchasable) ||
		errors.Is(err, ErrInvalidDownloadType) ||
		errors.Is(err, ErrInvalidCurrency)
}

// IsUnauthorizedError checks if the error belongs to the authentication class
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials)
}

// IsForbiddenError checks if the error belongs to the authorization class
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrOwnProject) ||
		errors.Is(err, ErrDownloadForbidden)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrWishlistItemNotFound) ||
		errors.Is(err, ErrReviewNotFound)
}

// IsConflictError checks if the error belongs to the duplicate/conflict class
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyInCart) ||
		errors.Is(err, ErrAlreadyInWishlist) ||
		errors.Is(err, ErrAlreadyReviewed) ||
		errors.Is(err, ErrAlreadyPurchased) ||
		errors.Is(err, ErrDuplicateTransaction) ||
		errors.Is(err, ErrDuplicateUser)
}

// IsRateLimitedError checks if the error is a rate limit rejection
func IsRateLimitedError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// HTTPStatus maps a domain error to its HTTP status code
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case IsForbiddenError(err):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsConflictError(err):
		return http.StatusConflict
	case IsRateLimitedError(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PurchaseError represents an error raised while reconciling a purchase
type PurchaseError struct {
	TransactionID string
	UserID        string
	ProjectID     string
	Status        string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase error for transaction %s (user: %s, project: %s, amount: %s): %s - %v",
		e.TransactionID, e.UserID, e.ProjectID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "purchase_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"project_id":     e.ProjectID,
		"status":         e.Status,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase reconciliation error
func NewPurchaseError(transactionID, userID, projectID, status, amount, reason string, err error) error {
	return &PurchaseError{
		TransactionID: transactionID,
		UserID:        userID,
		ProjectID:     projectID,
		Status:        status,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// DuplicateEntryError provides detail about a duplicate (user, project) entry attempt
type DuplicateEntryError struct {
	UserID    string
	ProjectID string
	Kind      error
}

// Error implements the error interface
func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%v: user=%s project=%s", e.Kind, e.UserID, e.ProjectID)
}

// Is reports whether the target matches the duplicate kind
func (e *DuplicateEntryError) Is(target error) bool {
	return target == e.Kind
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateEntryError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_entry",
		"user_id":    e.UserID,
		"project_id": e.ProjectID,
		"error":      e.Kind.Error(),
		"error_code": ErrorCode(e.Kind),
	}
}

// NewDuplicateEntryError creates a duplicate entry error of the given conflict kind
func NewDuplicateEntryError(kind error, userID, projectID string) error {
	return &DuplicateEntryError{UserID: userID, ProjectID: projectID, Kind: kind}
}
