package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"upay_gateway/internal/adapter/http/handlers/mocks"
	"upay_gateway/internal/domain/entities"
	"upay_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/mock/gomock"
)

type gatewayFailure struct{}

func (gatewayFailure) Error() string       { return "Bulk refund failed: insufficient balance" }
func (gatewayFailure) GatewayCode() string { return "MPR_400" }

func newHandlerRouter(h *UpayPaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/auth/verify", h.VerifyCredentials)
	r.POST("/v1/payments", h.InitPayment)
	r.GET("/v1/payments/:txn_id/status", h.GetPaymentStatus)
	r.POST("/v1/payments/status", h.GetBulkPaymentStatus)
	r.POST("/v1/refunds", h.BulkRefund)
	r.GET("/v1/gateway-calls/:id", h.GetGatewayCall)
	r.GET("/v1/gateway-calls", h.ListGatewayCalls)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestUpayPaymentHandler_VerifyCredentials(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().CheckAuthentication(gomock.Any()).Return(nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/verify", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["authenticated"] != true {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		gwErr := mocks.NewMockGatewayError(ctrl)
		gwErr.EXPECT().Error().Return("Authentication failed: invalid merchant").AnyTimes()
		gwErr.EXPECT().GatewayCode().Return("MAS4001").AnyTimes()
		uc.EXPECT().CheckAuthentication(gomock.Any()).Return(gwErr)

		w := doRequest(r, http.MethodPost, "/v1/auth/verify", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["code"] != "UPAY_OPERATION_FAILED" || body["message"] != "Authentication failed: invalid merchant" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestUpayPaymentHandler_InitPayment(t *testing.T) {
	t.Run("body forwarded verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		payload := `{"amount":100,"txn_id":"ORD-1"}`
		uc.EXPECT().InitPayment(gomock.Any(), json.RawMessage(payload)).Return(json.RawMessage(`{"trx_id":"TX1"}`), nil)

		w := doRequest(r, http.MethodPost, "/v1/payments", payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, ok := decodeBody(t, w)["data"].(map[string]any)
		if !ok || data["trx_id"] != "TX1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidPaymentPayload)

		w := doRequest(r, http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrGatewayNotConfigured)

		w := doRequest(r, http.MethodPost, "/v1/payments", `{"amount":1}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestUpayPaymentHandler_GetPaymentStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "TXN-1").Return(json.RawMessage(`{"status":"success"}`), nil)

		w := doRequest(r, http.MethodGet, "/v1/payments/TXN-1/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "TXN-1").Return(nil, fmt.Errorf("Payment status fetch failed: %w", context.DeadlineExceeded))

		w := doRequest(r, http.MethodGet, "/v1/payments/TXN-1/status", "")
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetPaymentStatus(gomock.Any(), "TXN-1").Return(nil, errors.New("boom"))

		w := doRequest(r, http.MethodGet, "/v1/payments/TXN-1/status", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "An internal error occurred" {
			t.Fatalf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestUpayPaymentHandler_GetBulkPaymentStatus(t *testing.T) {
	t.Run("list forwarded in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetBulkPaymentStatus(gomock.Any(), []string{"B", "A", "B"}).Return(json.RawMessage(`[]`), nil)

		w := doRequest(r, http.MethodPost, "/v1/payments/status", `{"txn_id_list":["B","A","B"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		w := doRequest(r, http.MethodPost, "/v1/payments/status", `{"txn_id_list":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpayPaymentHandler_BulkRefund(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		want := []entities.RefundItem{{TxnID: "T1", RefundAmount: 10}, {TxnID: "T2", RefundAmount: 2.5}}
		uc.EXPECT().BulkRefund(gomock.Any(), want).Return(json.RawMessage(`{"accepted":2}`), nil)

		w := doRequest(r, http.MethodPost, "/v1/refunds", `{"refunds":[{"txn_id":"T1","refund_amount":10},{"txn_id":"T2","refund_amount":2.5}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		w := doRequest(r, http.MethodPost, "/v1/refunds", `{"refunds":[{"txn_id":"T1","refund_amount":0}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().BulkRefund(gomock.Any(), gomock.Any()).Return(nil, gatewayFailure{})

		w := doRequest(r, http.MethodPost, "/v1/refunds", `{"refunds":[{"txn_id":"T1","refund_amount":1}]}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Bulk refund failed: insufficient balance" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestUpayPaymentHandler_GatewayCalls(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetGatewayCall(gomock.Any(), "c-1").Return(entities.GatewayCall{
			ID:        "c-1",
			Operation: entities.GatewayOperationPaymentStatus,
			Date:      time.Now().UTC(),
			Success:   true,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/gateway-calls/c-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["operation"] != "payment_status" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().GetGatewayCall(gomock.Any(), "c-9").Return(entities.GatewayCall{}, usecase.ErrGatewayCallNotFound)

		w := doRequest(r, http.MethodGet, "/v1/gateway-calls/c-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list invalid operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().ListGatewayCalls(gomock.Any(), "charge").Return(nil, usecase.ErrInvalidGatewayOperation)

		w := doRequest(r, http.MethodGet, "/v1/gateway-calls?operation=charge", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list history disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUpayPaymentUseCase(ctrl)
		r := newHandlerRouter(NewUpayPaymentHandler(uc, nil))

		uc.EXPECT().ListGatewayCalls(gomock.Any(), "bulk_refund").Return(nil, usecase.ErrGatewayCallsNotAvailable)

		w := doRequest(r, http.MethodGet, "/v1/gateway-calls?operation=bulk_refund", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
