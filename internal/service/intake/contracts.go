//go:generate mockgen -source=contracts.go -destination=processor_mocks_test.go -package=intake

package intake

import (
	"context"

	"delivery-dispatch/internal/domain"
)

type deliveryCreator interface {
	CreateWaitingDelivery(ctx context.Context, d *domain.Delivery) (bool, error)
}
