package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"upay_gateway/internal/domain/entities"
	"upay_gateway/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTxnID             = errors.New("invalid txn_id")
	ErrInvalidTxnIDList         = errors.New("invalid txn_id_list")
	ErrInvalidRefundList        = errors.New("invalid refund list")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrGatewayCallNotFound      = errors.New("gateway call not found")
	ErrInvalidGatewayCallID     = errors.New("invalid gateway call id")
	ErrInvalidGatewayOperation  = errors.New("invalid gateway operation")
	ErrGatewayCallsNotAvailable = errors.New("gateway call history not available")
)

const auditWriteTimeout = 5 * time.Second

// GatewayError is implemented by errors that carry the gateway's response code.
type GatewayError interface {
	error
	GatewayCode() string
}

// IUpayPaymentUseCase relays payment operations to Upay and keeps a history
// of every relayed call.

type IUpayPaymentUseCase interface {
	CheckAuthentication(ctx context.Context) error
	InitPayment(ctx context.Context, paymentData json.RawMessage) (json.RawMessage, error)
	GetPaymentStatus(ctx context.Context, txnID string) (json.RawMessage, error)
	GetBulkPaymentStatus(ctx context.Context, txnIDList []string) (json.RawMessage, error)
	BulkRefund(ctx context.Context, refunds []entities.RefundItem) (json.RawMessage, error)
	GetGatewayCall(ctx context.Context, id string) (entities.GatewayCall, error)
	ListGatewayCalls(ctx context.Context, operation string) ([]entities.GatewayCall, error)
}

type UpayPaymentUseCase struct {
	gateway  interfaces.IPaymentGateway
	repo     interfaces.IGatewayCallRepository
	validate *validator.Validate
	log      *zap.Logger
}

var _ IUpayPaymentUseCase = (*UpayPaymentUseCase)(nil)

// NewUpayPaymentUseCase wires the gateway and the call history. A nil repo
// turns the history off; gateway calls are relayed all the same.
func NewUpayPaymentUseCase(gateway interfaces.IPaymentGateway, repo interfaces.IGatewayCallRepository, logger *zap.Logger) *UpayPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpayPaymentUseCase{
		gateway:  gateway,
		repo:     repo,
		validate: validator.New(),
		log:      logger,
	}
}

func (u *UpayPaymentUseCase) CheckAuthentication(ctx context.Context) error {
	if u.gateway == nil {
		u.log.Error("upayPaymentUseCase.CheckAuthentication gateway not configured")
		return ErrGatewayNotConfigured
	}

	_, err := u.gateway.Authenticate(ctx)
	u.record(ctx, entities.GatewayOperationAuthenticate, "", nil, nil, err)
	if err != nil {
		u.log.Warn("upayPaymentUseCase.CheckAuthentication failed", zap.Error(err))
		return err
	}
	return nil
}

func (u *UpayPaymentUseCase) InitPayment(ctx context.Context, paymentData json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(paymentData)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		u.log.Warn("upayPaymentUseCase.InitPayment invalid payload", zap.Int("payload_len", len(paymentData)))
		return nil, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		u.log.Error("upayPaymentUseCase.InitPayment gateway not configured")
		return nil, ErrGatewayNotConfigured
	}

	data, err := u.gateway.InitPayment(ctx, paymentData)
	u.record(ctx, entities.GatewayOperationInitPayment, paymentReference(trimmed), paymentData, data, err)
	if err != nil {
		u.log.Warn("upayPaymentUseCase.InitPayment failed", zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (u *UpayPaymentUseCase) GetPaymentStatus(ctx context.Context, txnID string) (json.RawMessage, error) {
	if strings.TrimSpace(txnID) == "" {
		return nil, ErrInvalidTxnID
	}
	if u.gateway == nil {
		u.log.Error("upayPaymentUseCase.GetPaymentStatus gateway not configured")
		return nil, ErrGatewayNotConfigured
	}

	data, err := u.gateway.GetPaymentStatus(ctx, txnID)
	u.record(ctx, entities.GatewayOperationPaymentStatus, txnID, nil, data, err)
	if err != nil {
		u.log.Warn("upayPaymentUseCase.GetPaymentStatus failed", zap.String("txn_id", txnID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

// GetBulkPaymentStatus forwards the list as given. Order and duplicates are
// the caller's business.
func (u *UpayPaymentUseCase) GetBulkPaymentStatus(ctx context.Context, txnIDList []string) (json.RawMessage, error) {
	if len(txnIDList) == 0 {
		return nil, ErrInvalidTxnIDList
	}
	for _, id := range txnIDList {
		if strings.TrimSpace(id) == "" {
			return nil, ErrInvalidTxnIDList
		}
	}
	if u.gateway == nil {
		u.log.Error("upayPaymentUseCase.GetBulkPaymentStatus gateway not configured")
		return nil, ErrGatewayNotConfigured
	}

	data, err := u.gateway.GetBulkPaymentStatus(ctx, txnIDList)
	reqRaw, _ := json.Marshal(map[string][]string{"txn_id_list": txnIDList})
	u.record(ctx, entities.GatewayOperationBulkPaymentStatus, strings.Join(txnIDList, ","), reqRaw, data, err)
	if err != nil {
		u.log.Warn("upayPaymentUseCase.GetBulkPaymentStatus failed", zap.Int("txn_count", len(txnIDList)), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (u *UpayPaymentUseCase) BulkRefund(ctx context.Context, refunds []entities.RefundItem) (json.RawMessage, error) {
	if err := u.validate.Var(refunds, "required,min=1,dive"); err != nil {
		u.log.Warn("upayPaymentUseCase.BulkRefund invalid refund list", zap.Error(err))
		return nil, ErrInvalidRefundList
	}
	if u.gateway == nil {
		u.log.Error("upayPaymentUseCase.BulkRefund gateway not configured")
		return nil, ErrGatewayNotConfigured
	}

	data, err := u.gateway.BulkRefund(ctx, refunds)
	ids := make([]string, 0, len(refunds))
	for _, r := range refunds {
		ids = append(ids, r.TxnID)
	}
	reqRaw, _ := json.Marshal(refunds)
	u.record(ctx, entities.GatewayOperationBulkRefund, strings.Join(ids, ","), reqRaw, data, err)
	if err != nil {
		u.log.Warn("upayPaymentUseCase.BulkRefund failed", zap.Int("refund_count", len(refunds)), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (u *UpayPaymentUseCase) GetGatewayCall(ctx context.Context, id string) (entities.GatewayCall, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GatewayCall{}, ErrInvalidGatewayCallID
	}
	if u.repo == nil {
		return entities.GatewayCall{}, ErrGatewayCallsNotAvailable
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.GatewayCall{}, err
	}
	if c.ID == "" {
		return entities.GatewayCall{}, ErrGatewayCallNotFound
	}
	return c, nil
}

func (u *UpayPaymentUseCase) ListGatewayCalls(ctx context.Context, operation string) ([]entities.GatewayCall, error) {
	op := entities.GatewayOperation(strings.TrimSpace(operation))
	if !op.Valid() {
		return nil, ErrInvalidGatewayOperation
	}
	if u.repo == nil {
		return nil, ErrGatewayCallsNotAvailable
	}
	return u.repo.ListByOperation(ctx, op)
}

// record stores the outcome of one relayed call. The caller's outcome never
// depends on it: a failed write is logged and dropped.
func (u *UpayPaymentUseCase) record(ctx context.Context, op entities.GatewayOperation, reference string, reqRaw, respRaw json.RawMessage, callErr error) {
	if u.repo == nil {
		return
	}

	c := entities.GatewayCall{
		ID:          uuid.NewString(),
		Operation:   op,
		Reference:   reference,
		Date:        time.Now().UTC(),
		Success:     callErr == nil,
		RequestRaw:  reqRaw,
		ResponseRaw: respRaw,
	}
	if callErr != nil {
		c.Message = callErr.Error()
		var gwErr GatewayError
		if errors.As(callErr, &gwErr) {
			c.Code = gwErr.GatewayCode()
		}
	}

	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	if _, err := u.repo.Create(auditCtx, c); err != nil {
		u.log.Error("upayPaymentUseCase.record error saving gateway call",
			zap.String("id", c.ID),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
		return
	}
	u.log.Debug("upayPaymentUseCase.record gateway call saved", zap.String("id", c.ID), zap.String("operation", string(op)))
}

// paymentReference picks the merchant txn id out of an init payload, if any.
func paymentReference(payload []byte) string {
	var probe struct {
		TxnID json.RawMessage `json:"txn_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil || len(probe.TxnID) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(probe.TxnID, &s); err == nil {
		return s
	}
	return strings.Trim(string(probe.TxnID), `"`)
}
