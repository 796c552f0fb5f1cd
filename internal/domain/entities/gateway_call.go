package entities

import (
	"time"

	"github.com/goccy/go-json"
)

// GatewayOperation names one of the remote operations exposed by the Upay gateway.

type GatewayOperation string

const (
	GatewayOperationAuthenticate      GatewayOperation = "authenticate"
	GatewayOperationInitPayment       GatewayOperation = "init_payment"
	GatewayOperationPaymentStatus     GatewayOperation = "payment_status"
	GatewayOperationBulkPaymentStatus GatewayOperation = "bulk_payment_status"
	GatewayOperationBulkRefund        GatewayOperation = "bulk_refund"
)

func (o GatewayOperation) Valid() bool {
	switch o {
	case GatewayOperationAuthenticate,
		GatewayOperationInitPayment,
		GatewayOperationPaymentStatus,
		GatewayOperationBulkPaymentStatus,
		GatewayOperationBulkRefund:
		return true
	}
	return false
}

// GatewayCall is the traceability record kept for every relayed gateway call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (operation-index): operation
//
// Reference holds the txn id of a single status lookup, or the comma-joined
// txn ids of a bulk call. RequestRaw and ResponseRaw keep the bodies exactly as
// exchanged; merchant credentials and tokens are never part of them.

type GatewayCall struct {
	ID        string           `json:"id"`
	Operation GatewayOperation `json:"operation"`
	Reference string           `json:"reference,omitempty"`
	Date      time.Time        `json:"date"`
	Success   bool             `json:"success"`
	Code      string           `json:"code,omitempty"`
	Message   string           `json:"message,omitempty"`

	RequestRaw  json.RawMessage `json:"request_raw,omitempty"`
	ResponseRaw json.RawMessage `json:"response_raw,omitempty"`
}
