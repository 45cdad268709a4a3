package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

type captureStore struct {
	mu        sync.Mutex
	exchanges []domain.ChatExchange
}

func (s *captureStore) Append(_ context.Context, exchange domain.ChatExchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, exchange)
	return nil
}

func (s *captureStore) Recent(context.Context, string, int) ([]domain.ChatExchange, error) {
	return nil, nil
}

func (s *captureStore) snapshot() []domain.ChatExchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatExchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_PerAccountOrdering(t *testing.T) {
	store := &captureStore{}
	d := NewDispatcher(4, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Record(domain.ChatExchange{AccountID: "acc-1", Message: strconv.Itoa(i)})
	}

	waitFor(t, func() bool { return len(store.snapshot()) == n })

	for i, ex := range store.snapshot() {
		if ex.Message != strconv.Itoa(i) {
			t.Fatalf("exchange %d out of order: got %s", i, ex.Message)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &captureStore{}, zerolog.Nop())

	first := d.shardIndex("acc-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("acc-42") != first {
			t.Fatalf("shard index not stable")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &captureStore{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	store := &captureStore{}
	d := NewDispatcher(1, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.ChatExchange{AccountID: "acc-1", Message: "before"})
	waitFor(t, func() bool { return len(store.snapshot()) == 1 })

	cancel()
	// Give workers a moment to observe cancellation; a record sent afterwards
	// may sit in the buffer but must not be processed.
	time.Sleep(20 * time.Millisecond)
	d.Record(domain.ChatExchange{AccountID: "acc-1", Message: "after"})
	time.Sleep(50 * time.Millisecond)

	if len(store.snapshot()) != 1 {
		t.Fatalf("worker processed an exchange after cancellation")
	}
}
