//go:generate mockgen -source=contracts.go -destination=usecase_mocks_test.go -package=lifecycle

package lifecycle

import (
	"context"

	"delivery-dispatch/internal/ports/dispatchtx"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
