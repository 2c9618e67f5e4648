// Package collector implements the background metadata collector: one
// cooperative loop per configured chain, polling a node's JSON-RPC
// interface for runtime upgrades and persisting a hex metadata snapshot
// plus its runtime version whenever spec_version changes. It is a client
// of pkg/scale, pkg/metadata and pkg/primitives, not a producer for them —
// everything it writes to disk is consumed by the metadata parser
// elsewhere in this module.
package collector

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BlockHashLimit bounds how many block hashes are requested in a single
// chain_getBlockHash batch. Per the redesign decision recorded in
// DESIGN.md, this is a batch size, not an absolute cap: the fetch range
// upper bound is min(head, lastBlock+BlockHashLimit), not min(head,
// BlockHashLimit).
const BlockHashLimit = 30

// PollInterval is how long a collector sleeps once it has caught up to
// the chain head before re-checking it.
const PollInterval = 10 * time.Second

type client interface {
	Header(ctx context.Context) (uint64, error)
	BlockHashes(ctx context.Context, numbers []uint64) ([]string, error)
	RuntimeVersion(ctx context.Context, blockHash string) (RuntimeVersion, error)
	Metadata(ctx context.Context, blockHash string) (string, error)
}

// Collector runs the catch-up-then-poll loop for a single chain.
type Collector struct {
	ChainName string
	Directory string

	client  client
	logger  *zap.Logger
	metrics *Metrics
	sleep   func(context.Context, time.Duration) error
}

// dataDir is where this collector's state file and sidecars live:
// Directory namespaced by ChainName, so a shared Directory across a
// multichain config never lets two chains clobber each other's
// .collection_state or sidecar files.
func (c *Collector) dataDir() string {
	return filepath.Join(c.Directory, c.ChainName)
}

// New builds a Collector polling endpoint for chainName, persisting state
// under directory.
func New(chainName, endpoint, directory string, logger *zap.Logger, metrics *Metrics) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		ChainName: chainName,
		Directory: directory,
		client:    NewRPCClient(endpoint),
		logger:    logger,
		metrics:   metrics,
		sleep:     ctxSleep,
	}
}

func ctxSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run polls until ctx is cancelled or a fatal error occurs (a chain-name
// mismatch, or an RPC/disk failure). It never returns nil: once ctx is
// cancelled it returns ctx.Err(), and any other error is treated as a
// process-terminating event by the caller.
func (c *Collector) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := c.logger.With(zap.String("chain", c.ChainName), zap.String("run_id", runID))
	log.Info("collector starting")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		head, err := c.client.Header(ctx)
		if err != nil {
			c.countError()
			return err
		}

		state, err := loadState(c.dataDir())
		if err != nil {
			c.countError()
			return err
		}

		for state.LastBlock <= head {
			if err := ctx.Err(); err != nil {
				return err
			}

			upper := state.LastBlock + BlockHashLimit
			if upper > head+1 {
				upper = head + 1
			}
			numbers := make([]uint64, 0, upper-state.LastBlock)
			for n := state.LastBlock; n < upper; n++ {
				numbers = append(numbers, n)
			}
			if len(numbers) == 0 {
				break
			}

			hashes, err := c.client.BlockHashes(ctx, numbers)
			if err != nil {
				c.countError()
				return err
			}

			for i, hash := range hashes {
				rv, err := c.client.RuntimeVersion(ctx, hash)
				if err != nil {
					c.countError()
					return err
				}
				if rv.SpecName != c.ChainName {
					c.countError()
					return &ErrSpecNameMismatch{Chain: c.ChainName, SpecName: rv.SpecName, BlockHash: hash}
				}

				if rv.SpecVersion != state.SpecVersion {
					metadataHex, err := c.client.Metadata(ctx, hash)
					if err != nil {
						c.countError()
						return err
					}
					if err := writeSidecars(c.dataDir(), rv, metadataHex); err != nil {
						c.countError()
						return err
					}
					state.SpecVersion = rv.SpecVersion
					log.Info("observed runtime upgrade", zap.Uint64("spec_version", rv.SpecVersion))
					if c.metrics != nil {
						c.metrics.SpecChanges.WithLabelValues(c.ChainName).Inc()
					}
				}

				state.LastBlock = numbers[i] + 1
				if err := saveState(c.dataDir(), state); err != nil {
					c.countError()
					return err
				}
				if c.metrics != nil {
					c.metrics.BlocksProcessed.WithLabelValues(c.ChainName).Inc()
					c.metrics.LastBlock.WithLabelValues(c.ChainName).Set(float64(numbers[i]))
				}
			}
		}

		log.Debug("caught up, sleeping", zap.Duration("interval", PollInterval))
		if err := c.sleep(ctx, PollInterval); err != nil {
			return err
		}
	}
}

func (c *Collector) countError() {
	if c.metrics != nil {
		c.metrics.Errors.WithLabelValues(c.ChainName).Inc()
	}
}
