package response

import (
	"time"

	"upay_gateway/internal/domain/entities"

	"github.com/goccy/go-json"
)

// GatewayDataResponse wraps the `data` member returned by the gateway, untouched.
type GatewayDataResponse struct {
	Data json.RawMessage `json:"data" swaggertype:"object"`
}

type AuthVerifyResponse struct {
	Authenticated bool `json:"authenticated"`
}

type GatewayCallResponse struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Reference string    `json:"reference,omitempty"`
	Date      time.Time `json:"date"`
	Success   bool      `json:"success"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`

	Request  json.RawMessage `json:"request,omitempty" swaggertype:"object"`
	Response json.RawMessage `json:"response,omitempty" swaggertype:"object"`
}

func NewGatewayDataResponse(data json.RawMessage) GatewayDataResponse {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return GatewayDataResponse{Data: data}
}

func FromGatewayCall(c entities.GatewayCall) GatewayCallResponse {
	return GatewayCallResponse{
		ID:        c.ID,
		Operation: string(c.Operation),
		Reference: c.Reference,
		Date:      c.Date,
		Success:   c.Success,
		Code:      c.Code,
		Message:   c.Message,
		Request:   c.RequestRaw,
		Response:  c.ResponseRaw,
	}
}

func FromGatewayCalls(calls []entities.GatewayCall) []GatewayCallResponse {
	out := make([]GatewayCallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, FromGatewayCall(c))
	}
	return out
}
