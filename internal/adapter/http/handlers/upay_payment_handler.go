package handlers

import (
	"context"
	"errors"
	"net/http"

	request "upay_gateway/internal/adapter/http/dto/request"
	response "upay_gateway/internal/adapter/http/dto/response"
	"upay_gateway/internal/adapter/http/middleware"
	"upay_gateway/internal/usecase"
	"upay_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// UpayPaymentHandler exposes the Upay gateway operations over HTTP.

type UpayPaymentHandler struct {
	usecase usecase.IUpayPaymentUseCase
	log     *zap.Logger
}

func NewUpayPaymentHandler(uc usecase.IUpayPaymentUseCase, logger *zap.Logger) *UpayPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpayPaymentHandler{usecase: uc, log: logger}
}

// VerifyCredentials godoc
// @Summary      Verify merchant credentials
// @Description  Authenticates against Upay with the configured merchant. The token is never returned.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.AuthVerifyResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /auth/verify [post]
func (h *UpayPaymentHandler) VerifyCredentials(c *gin.Context) {
	if err := h.usecase.CheckAuthentication(c.Request.Context()); err != nil {
		h.fail(c, "upayPaymentHandler.VerifyCredentials", err)
		return
	}
	c.JSON(http.StatusOK, response.AuthVerifyResponse{Authenticated: true})
}

// InitPayment godoc
// @Summary      Start a payment
// @Description  Forwards the body verbatim to Upay and returns the gateway `data`.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Upay payment init payload"
// @Success      200      {object}  response.GatewayDataResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *UpayPaymentHandler) InitPayment(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("upayPaymentHandler.InitPayment error reading body", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	data, err := h.usecase.InitPayment(c.Request.Context(), raw)
	if err != nil {
		h.fail(c, "upayPaymentHandler.InitPayment", err)
		return
	}
	c.JSON(http.StatusOK, response.NewGatewayDataResponse(data))
}

// GetPaymentStatus godoc
// @Summary      Payment status
// @Tags         payments
// @Produce      json
// @Param        txn_id  path      string  true  "Merchant transaction id"
// @Success      200     {object}  response.GatewayDataResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /payments/{txn_id}/status [get]
func (h *UpayPaymentHandler) GetPaymentStatus(c *gin.Context) {
	data, err := h.usecase.GetPaymentStatus(c.Request.Context(), c.Param("txn_id"))
	if err != nil {
		h.fail(c, "upayPaymentHandler.GetPaymentStatus", err)
		return
	}
	c.JSON(http.StatusOK, response.NewGatewayDataResponse(data))
}

// GetBulkPaymentStatus godoc
// @Summary      Status of several payments
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BulkPaymentStatusRequest  true  "Transaction ids"
// @Success      200      {object}  response.GatewayDataResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/status [post]
func (h *UpayPaymentHandler) GetBulkPaymentStatus(c *gin.Context) {
	var payload request.BulkPaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("upayPaymentHandler.GetBulkPaymentStatus invalid payload", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	data, err := h.usecase.GetBulkPaymentStatus(c.Request.Context(), payload.TxnIDList)
	if err != nil {
		h.fail(c, "upayPaymentHandler.GetBulkPaymentStatus", err)
		return
	}
	c.JSON(http.StatusOK, response.NewGatewayDataResponse(data))
}

// BulkRefund godoc
// @Summary      Refund several payments
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Param        payload  body      request.BulkRefundRequest  true  "Refund list"
// @Success      200      {object}  response.GatewayDataResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /refunds [post]
func (h *UpayPaymentHandler) BulkRefund(c *gin.Context) {
	var payload request.BulkRefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("upayPaymentHandler.BulkRefund invalid payload", zap.String("request_id", middleware.RequestIDFrom(c)), zap.Error(err))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	data, err := h.usecase.BulkRefund(c.Request.Context(), payload.ToEntities())
	if err != nil {
		h.fail(c, "upayPaymentHandler.BulkRefund", err)
		return
	}
	c.JSON(http.StatusOK, response.NewGatewayDataResponse(data))
}

// GetGatewayCall godoc
// @Summary      Recorded gateway call
// @Tags         gateway-calls
// @Produce      json
// @Param        id   path      string  true  "Gateway call id"
// @Success      200  {object}  response.GatewayCallResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /gateway-calls/{id} [get]
func (h *UpayPaymentHandler) GetGatewayCall(c *gin.Context) {
	call, err := h.usecase.GetGatewayCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "upayPaymentHandler.GetGatewayCall", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayCall(call))
}

// ListGatewayCalls godoc
// @Summary      Recorded gateway calls of one operation
// @Tags         gateway-calls
// @Produce      json
// @Param        operation  query     string  true  "authenticate, init_payment, payment_status, bulk_payment_status or bulk_refund"
// @Success      200        {array}   response.GatewayCallResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /gateway-calls [get]
func (h *UpayPaymentHandler) ListGatewayCalls(c *gin.Context) {
	calls, err := h.usecase.ListGatewayCalls(c.Request.Context(), c.Query("operation"))
	if err != nil {
		h.fail(c, "upayPaymentHandler.ListGatewayCalls", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayCalls(calls))
}

func (h *UpayPaymentHandler) fail(c *gin.Context, where string, err error) {
	appErr := mapUpayError(err)
	fields := []zap.Field{
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.Int("status", appErr.HTTPStatus),
		zap.String("code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error(where+" failed", fields...)
	} else {
		h.log.Info(where+" rejected", fields...)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapUpayError(err error) *pkg.AppError {
	var gwErr usecase.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidTxnID),
		errors.Is(err, usecase.ErrInvalidTxnIDList),
		errors.Is(err, usecase.ErrInvalidRefundList),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrInvalidGatewayCallID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidGatewayOperation):
		return pkg.NewDomainErrorSimple("INVALID_OPERATION", "Unknown gateway operation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayCallNotFound):
		return pkg.NewDomainErrorSimple("GATEWAY_CALL_NOT_FOUND", "Gateway call not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayCallsNotAvailable):
		return pkg.NewDomainErrorSimple("GATEWAY_CALLS_DISABLED", "Gateway call history is disabled", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("UPAY_TIMEOUT", "Payment gateway timed out", err, http.StatusGatewayTimeout)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("UPAY_OPERATION_FAILED", gwErr.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
