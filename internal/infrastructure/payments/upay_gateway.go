package payments

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"upay_gateway/internal/domain/entities"
	"upay_gateway/internal/usecase/interfaces"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	DefaultUpayBaseURL    = "https://uat-pg.upay.systems"
	DefaultRequestTimeout = 10 * time.Second

	upayAuthScheme = "UPAY"

	upayPathMerchantAuth        = "/payment/merchant-auth/"
	upayPathPaymentInit         = "/payment/merchant-payment-init/"
	upayPathSinglePaymentStatus = "/payment/single-payment-status/%s/"
	upayPathBulkPaymentStatus   = "/payment/bulk-payment-status/"
	upayPathBulkRefund          = "/payment/bulk/refund/"

	upayCodeAuthSuccess   = "MAS2001"
	upayCodeInitSuccess   = "MPIS2002"
	upayCodeStatusSuccess = "PS2005"
	upayCodeRefundSuccess = "MPR_200"
)

// Credentials identify the merchant against the Upay gateway.
type Credentials struct {
	BaseURL     string
	MerchantID  string
	MerchantKey string
}

type upayAuthRequest struct {
	MerchantID  string `json:"merchant_id"`
	MerchantKey string `json:"merchant_key"`
}

type upayAuthData struct {
	Token string `json:"token"`
}

type upayBulkStatusRequest struct {
	TxnIDList []string `json:"txn_id_list"`
}

// UpayGateway talks to the Upay payment gateway.
//
// Every operation fetches a fresh token first; nothing is cached between calls,
// so one instance can be shared by concurrent callers.
type UpayGateway struct {
	baseURL     string
	merchantID  string
	merchantKey string
	httpClient  *http.Client
	log         *zap.Logger
}

var _ interfaces.IPaymentGateway = (*UpayGateway)(nil)

// NewUpayGateway builds a client without touching the network. A nil httpClient
// gets a client with DefaultRequestTimeout; a nil logger disables logging.
func NewUpayGateway(creds Credentials, httpClient *http.Client, logger *zap.Logger) *UpayGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultRequestTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpayGateway{
		baseURL:     strings.TrimRight(creds.BaseURL, "/"),
		merchantID:  creds.MerchantID,
		merchantKey: creds.MerchantKey,
		httpClient:  httpClient,
		log:         logger,
	}
}

func (g *UpayGateway) BaseURL() string {
	return g.baseURL
}

// Authenticate exchanges the merchant credentials for a short-lived token.
func (g *UpayGateway) Authenticate(ctx context.Context) (string, error) {
	g.log.Debug("upayGateway.Authenticate called", zap.String("merchant_id", g.merchantID))

	payload := upayAuthRequest{MerchantID: g.merchantID, MerchantKey: g.merchantKey}
	env, err := g.do(ctx, OperationAuthenticate, http.MethodPost, upayPathMerchantAuth, "", payload, upayCodeAuthSuccess)
	if err != nil {
		return "", err
	}

	var data upayAuthData
	if raw := env.DataOrNil(); raw != nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			g.log.Error("upayGateway.Authenticate error decoding token", zap.Error(err))
			return "", &OperationError{Operation: OperationAuthenticate, Message: unknownErrorMessage, Code: env.Code(), Err: err}
		}
	}
	if data.Token == "" {
		g.log.Error("upayGateway.Authenticate token missing from response")
		return "", &OperationError{Operation: OperationAuthenticate, Message: "token missing from response", Code: env.Code()}
	}

	g.log.Debug("upayGateway.Authenticate succeeded")
	return data.Token, nil
}

// InitPayment forwards paymentData verbatim to the payment-init endpoint.
func (g *UpayGateway) InitPayment(ctx context.Context, paymentData json.RawMessage) (json.RawMessage, error) {
	token, err := g.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	env, err := g.do(ctx, OperationInitPayment, http.MethodPost, upayPathPaymentInit, token, paymentData, upayCodeInitSuccess)
	if err != nil {
		return nil, err
	}
	return env.DataOrNil(), nil
}

func (g *UpayGateway) GetPaymentStatus(ctx context.Context, txnID string) (json.RawMessage, error) {
	token, err := g.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(upayPathSinglePaymentStatus, url.PathEscape(txnID))
	env, err := g.do(ctx, OperationPaymentStatus, http.MethodGet, path, token, nil, upayCodeStatusSuccess)
	if err != nil {
		return nil, err
	}
	return env.DataOrNil(), nil
}

// GetBulkPaymentStatus sends txnIDList as given: order kept, duplicates kept.
func (g *UpayGateway) GetBulkPaymentStatus(ctx context.Context, txnIDList []string) (json.RawMessage, error) {
	token, err := g.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if txnIDList == nil {
		txnIDList = []string{}
	}
	payload := upayBulkStatusRequest{TxnIDList: txnIDList}
	env, err := g.do(ctx, OperationBulkPaymentStatus, http.MethodPost, upayPathBulkPaymentStatus, token, payload, upayCodeStatusSuccess)
	if err != nil {
		return nil, err
	}
	return env.DataOrNil(), nil
}

// BulkRefund posts the refund list as the top-level JSON array.
func (g *UpayGateway) BulkRefund(ctx context.Context, refunds []entities.RefundItem) (json.RawMessage, error) {
	token, err := g.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if refunds == nil {
		refunds = []entities.RefundItem{}
	}
	env, err := g.do(ctx, OperationBulkRefund, http.MethodPost, upayPathBulkRefund, token, refunds, upayCodeRefundSuccess)
	if err != nil {
		return nil, err
	}
	return env.DataOrNil(), nil
}

// do performs one round trip and classifies the envelope. Only an exact match
// on successCode together with a 2xx status counts as success.
func (g *UpayGateway) do(ctx context.Context, operation, method, path, token string, body any, successCode string) (*upayEnvelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			g.log.Error("upayGateway.do error marshaling request",
				zap.String("operation", operation),
				zap.Error(err),
			)
			return nil, newTransportError(operation, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		g.log.Error("upayGateway.do error creating HTTP request",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return nil, newTransportError(operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", upayAuthScheme+" "+token)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("upayGateway.do error sending HTTP request",
			zap.String("operation", operation),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, newTransportError(operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Error("upayGateway.do error reading response body",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil, newTransportError(operation, err)
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		g.log.Error("upayGateway.do error decoding response envelope",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.Int("body_len", len(raw)),
			zap.Error(err),
		)
		return nil, &OperationError{Operation: operation, Message: unknownErrorMessage, StatusCode: resp.StatusCode, Err: err}
	}

	code := env.Code()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || code != successCode {
		g.log.Warn("upayGateway.do gateway rejected request",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.String("code", code),
			zap.String("expected_code", successCode),
		)
		return nil, &OperationError{
			Operation:  operation,
			Message:    messageOrUnknown(env.Message()),
			Code:       code,
			StatusCode: resp.StatusCode,
		}
	}

	g.log.Info("upayGateway.do succeeded",
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode),
		zap.String("code", code),
		zap.Duration("elapsed", time.Since(start)),
	)
	return env, nil
}
