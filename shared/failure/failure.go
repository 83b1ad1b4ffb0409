package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason carries the stable machine-readable kind of the failure.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

const (
	ReasonInvalidPassengerData  = "invalid_passenger_data"
	ReasonSeatCountMismatch     = "seat_count_mismatch"
	ReasonInvalidPaymentDetails = "invalid_payment_details"
	ReasonPaymentDeclined       = "payment_declined"
	ReasonDuplicatePNR          = "duplicate_pnr"
	ReasonNotFound              = "not_found"
	ReasonInvalidTransition     = "invalid_transition"
	ReasonSeatUnavailable       = "seat_unavailable"
	ReasonConflict              = "conflict"
)

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

func InvalidPassengerData(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonInvalidPassengerData,
		Message: msg,
	}
}

func SeatCountMismatch(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonSeatCountMismatch,
		Message: msg,
	}
}

func InvalidPaymentDetails(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonInvalidPaymentDetails,
		Message: msg,
	}
}

func PaymentDeclined(msg string) error {
	return &Failure{
		Code:    http.StatusPaymentRequired,
		Reason:  ReasonPaymentDeclined,
		Message: msg,
	}
}

// DuplicatePNR marks a ledger integrity violation. It is never retried.
func DuplicatePNR(pnr string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Reason:  ReasonDuplicatePNR,
		Message: "booking reference " + pnr + " already exists",
	}
}

func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonInvalidTransition,
		Message: msg,
	}
}

func SeatUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonSeatUnavailable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of an error interface, or an empty string for plain errors.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// Is reports whether any error in err's chain is a Failure with the given reason.
func Is(err error, reason string) bool {
	return reason != "" && GetReason(err) == reason
}
