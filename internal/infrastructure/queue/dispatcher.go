package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/api/metrics"
	"github.com/pathwise/career-advisor/internal/core/domain"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher persists chat transcripts off the request path. Exchanges are
// routed to a fixed set of workers by hashing the account ID, so one
// account's history is always written in ask order.
type Dispatcher struct {
	workers []chan domain.ChatExchange
	store   ports.TranscriptStore
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.TranscriptStore, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ChatExchange, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ChatExchange, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an exchange to the worker responsible for its account.
// Non-blocking up to channelBuffer capacity; beyond that the exchange is
// dropped with a warning rather than stalling the chat response.
func (d *Dispatcher) Record(exchange domain.ChatExchange) {
	idx := d.shardIndex(exchange.AccountID)
	select {
	case d.workers[idx] <- exchange:
		metrics.TranscriptQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("account_id", exchange.AccountID).Msg("transcript queue full, exchange dropped")
	}
}

// shardIndex maps an account ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(accountID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accountID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ChatExchange) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case exchange, ok := <-ch:
			if !ok {
				return
			}
			metrics.TranscriptQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.store.Append(ctx, exchange); err != nil {
				d.log.Error().Err(err).
					Str("account_id", exchange.AccountID).
					Int("worker_id", id).
					Msg("transcript write failed")
			}
		}
	}
}
