package payments

import "errors"

// ErrGatewayOperationFailed matches every *OperationError through errors.Is.
var ErrGatewayOperationFailed = errors.New("upay gateway operation failed")

const unknownErrorMessage = "Unknown error"

// Operation labels used as the prefix of OperationError messages.
const (
	OperationAuthenticate      = "Authentication"
	OperationInitPayment       = "Payment initialization"
	OperationPaymentStatus     = "Payment status fetch"
	OperationBulkPaymentStatus = "Bulk payment status fetch"
	OperationBulkRefund        = "Bulk refund"
)

// OperationError is the single failure kind surfaced by UpayGateway.
//
// Message is the envelope message, "Unknown error" when the gateway sent none,
// or the transport error text when no response was read. Code and StatusCode
// are zero when the request never produced a decodable response.
type OperationError struct {
	Operation  string
	Message    string
	Code       string
	StatusCode int
	Err        error
}

func (e *OperationError) Error() string {
	return e.Operation + " failed: " + e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return target == ErrGatewayOperationFailed
}

// GatewayCode returns the envelope code that caused the failure, if any.
func (e *OperationError) GatewayCode() string {
	return e.Code
}

func newTransportError(operation string, err error) *OperationError {
	return &OperationError{Operation: operation, Message: err.Error(), Err: err}
}

func messageOrUnknown(msg string) string {
	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}
