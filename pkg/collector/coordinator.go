package collector

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dotscale/substrate-go/config"
)

// RunAll starts one Collector goroutine per chain in cfg.Chains and blocks
// until either ctx is cancelled or any collector returns a fatal error.
// Collectors share no state with each other; the first fatal error posts
// to a single capacity-one channel and cancels every other collector's
// context, matching the cooperative single-channel shutdown model in
// spec.md §5.
func RunAll(ctx context.Context, chains []config.Chain, logger *zap.Logger, metrics *Metrics) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdown := make(chan error, 1)
	var wg sync.WaitGroup

	for _, chain := range chains {
		wg.Add(1)
		go func(chain config.Chain) {
			defer wg.Done()
			c := New(chain.ChainName, chain.Endpoint, chain.Directory, logger, metrics)
			if err := c.Run(ctx); err != nil && ctx.Err() == nil {
				c.logger.Error("collector stopped", zap.String("chain", chain.ChainName), zap.Error(err))
				select {
				case shutdown <- err:
				default:
				}
				cancel()
			}
		}(chain)
	}

	wg.Wait()

	select {
	case err := <-shutdown:
		return err
	default:
		return nil
	}
}
