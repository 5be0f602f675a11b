package platform

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

const (
	connectAttempts = 5
	connectDelay    = 500 * time.Millisecond
)

// Connect retries a dependency's dial-and-ping function with exponential
// backoff until it succeeds, the attempts run out or ctx is done.
func Connect(ctx context.Context, logger *zap.Logger, name string, dial func() error) error {
	return retry.Do(
		dial,
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("dependency connect failed, retrying",
				zap.String("dependency", name),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
}
