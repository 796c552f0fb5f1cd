package payments

import (
	"context"
	"strconv"
	"time"

	"upay_gateway/internal/domain/entities"
	"upay_gateway/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// MockUpayGateway answers every operation locally with canned success data.
// It is selected with PAYMENT_GATEWAY_MOCK for local runs without merchant credentials.
type MockUpayGateway struct {
	baseURL string
	log     *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MockUpayGateway)(nil)

func NewMockUpayGateway(baseURL string, logger *zap.Logger) *MockUpayGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("mockUpayGateway enabled")
	return &MockUpayGateway{baseURL: baseURL, log: logger}
}

func (g *MockUpayGateway) Authenticate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", newTransportError(OperationAuthenticate, err)
	}
	return "mock-token-" + mockID(), nil
}

func (g *MockUpayGateway) InitPayment(ctx context.Context, paymentData json.RawMessage) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newTransportError(OperationInitPayment, err)
	}
	g.log.Debug("mockUpayGateway.InitPayment called", zap.Int("payload_len", len(paymentData)))

	resp := map[string]any{}
	if len(paymentData) > 0 && json.Valid(paymentData) {
		if err := json.Unmarshal(paymentData, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(paymentData)}
		}
	}

	trxID := "MOCK-" + mockID()
	resp["trx_id"] = trxID
	resp["gateway_url"] = g.baseURL + "/mock/checkout/" + trxID + "/"
	resp["status"] = "pending"

	return json.Marshal(resp)
}

func (g *MockUpayGateway) GetPaymentStatus(ctx context.Context, txnID string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newTransportError(OperationPaymentStatus, err)
	}
	return json.Marshal(mockStatus(txnID))
}

func (g *MockUpayGateway) GetBulkPaymentStatus(ctx context.Context, txnIDList []string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newTransportError(OperationBulkPaymentStatus, err)
	}
	out := make([]map[string]any, 0, len(txnIDList))
	for _, id := range txnIDList {
		out = append(out, mockStatus(id))
	}
	return json.Marshal(out)
}

func (g *MockUpayGateway) BulkRefund(ctx context.Context, refunds []entities.RefundItem) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, newTransportError(OperationBulkRefund, err)
	}
	out := make([]map[string]any, 0, len(refunds))
	for _, r := range refunds {
		out = append(out, map[string]any{
			"txn_id":        r.TxnID,
			"refund_amount": r.RefundAmount,
			"status":        "refund_requested",
		})
	}
	return json.Marshal(out)
}

func mockStatus(txnID string) map[string]any {
	return map[string]any{
		"txn_id":     txnID,
		"status":     "success",
		"updated_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func mockID() string {
	return strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}
