package repository

import (
	"context"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
)

// OrderGateway submits a finished order payload to the external order
// service. Transport, retries and authentication live behind this boundary.
type OrderGateway interface {
	Submit(ctx context.Context, payload *entity.OrderPayload) (orderRef string, err error)
}
