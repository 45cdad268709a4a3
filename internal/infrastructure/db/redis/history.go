package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pathwise/career-advisor/internal/core/domain"
)

const (
	historyTTL = 7 * 24 * time.Hour
	historyCap = 50
)

// HistoryStore keeps the most recent chat exchanges per account in a capped
// Redis list, newest first. Key format: chat:history:<account_id>
type HistoryStore struct {
	client *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

// Append records one exchange and trims the list to historyCap entries.
func (s *HistoryStore) Append(ctx context.Context, exchange domain.ChatExchange) error {
	payload, err := json.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("marshal exchange: %w", err)
	}

	key := s.key(exchange.AccountID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, historyCap-1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append chat history: %w", err)
	}
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (s *HistoryStore) Recent(ctx context.Context, accountID string, limit int) ([]domain.ChatExchange, error) {
	if limit <= 0 || limit > historyCap {
		limit = historyCap
	}

	raw, err := s.client.LRange(ctx, s.key(accountID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read chat history: %w", err)
	}

	out := make([]domain.ChatExchange, 0, len(raw))
	for _, item := range raw {
		var ex domain.ChatExchange
		if err := json.Unmarshal([]byte(item), &ex); err != nil {
			continue // skip entries written by older versions
		}
		out = append(out, ex)
	}
	return out, nil
}

func (s *HistoryStore) key(accountID string) string {
	return "chat:history:" + accountID
}
