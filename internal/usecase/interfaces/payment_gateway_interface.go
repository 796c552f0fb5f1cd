package interfaces

import (
	"context"

	"upay_gateway/internal/domain/entities"

	"github.com/goccy/go-json"
)

// IPaymentGateway abstracts the Upay payment gateway.
//
// Each call authenticates on its own and returns the envelope `data` untouched.
// Failures (transport or business code) come back as a single error kind whose
// message reads "<operation> failed: <gateway message>".
type IPaymentGateway interface {
	Authenticate(ctx context.Context) (string, error)
	InitPayment(ctx context.Context, paymentData json.RawMessage) (json.RawMessage, error)
	GetPaymentStatus(ctx context.Context, txnID string) (json.RawMessage, error)
	GetBulkPaymentStatus(ctx context.Context, txnIDList []string) (json.RawMessage, error)
	BulkRefund(ctx context.Context, refunds []entities.RefundItem) (json.RawMessage, error)
}
