package interfaces

import (
	"context"

	"upay_gateway/internal/domain/entities"
)

// IGatewayCallRepository abstracts DynamoDB persistence for GatewayCall.

type IGatewayCallRepository interface {
	Create(ctx context.Context, c entities.GatewayCall) (entities.GatewayCall, error)
	GetByID(ctx context.Context, id string) (entities.GatewayCall, error)
	ListByOperation(ctx context.Context, operation entities.GatewayOperation) ([]entities.GatewayCall, error)
}
