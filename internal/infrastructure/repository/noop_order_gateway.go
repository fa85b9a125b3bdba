package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	domainRepo "github.com/forkpoint/ordering-api/internal/domain/repository"
)

type loggingOrderGateway struct{}

// NewLoggingOrderGateway creates an order gateway that logs submissions and
// returns a generated reference. It stands in for the real order service in
// environments where one is not wired up.
func NewLoggingOrderGateway() domainRepo.OrderGateway {
	return &loggingOrderGateway{}
}

func (g *loggingOrderGateway) Submit(_ context.Context, payload *entity.OrderPayload) (string, error) {
	ref := fmt.Sprintf("ORD-%s", uuid.New().String()[:8])
	log.Printf("order %s: branch=%s service=%s items=%d total=%d %s",
		ref, payload.BranchID, payload.ServiceType, len(payload.Items), payload.TotalCents, payload.Currency)
	return ref, nil
}
