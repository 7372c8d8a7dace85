package store

import (
	"context"
	"fmt"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/data/redisStore"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

// RedisSessionStore keeps two keys per session: the session id itself as an
// existence marker, and <id>:history as the chat exchange list. Both carry
// the same TTL so abandoned sessions age out together.
type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	rs := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if rs == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  rs,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func historyKey(sessionId string) string {
	return sessionId + ":history"
}

func (s *RedisSessionStore) InitSession(ctx context.Context, id string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	log.Debug("Initializing session")

	if err := s.store.Del(ctx, id, historyKey(id)); err != nil && !s.store.IsNil(err) {
		log.Error("Error clearing previous session state", "error", err)
	}
	return s.store.Set(ctx, id, "1", config.RedisSessionStoreTTL)
}

func (s *RedisSessionStore) ValidateSession(ctx context.Context, id string) bool {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	isFound, err := s.store.Exists(ctx, id)
	if s.store.IsNil(err) {
		return false
	} else if err != nil {
		log.Error("Failed to check if session exists", "err", err)
		return false
	}
	return isFound
}

func (s *RedisSessionStore) DropSession(ctx context.Context, id string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", id)
	log.Debug("Dropping session")
	return s.store.Del(ctx, id, historyKey(id))
}

func (s *RedisSessionStore) SaveExchange(ctx context.Context, sessionId string, question string, answer string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	if !s.ValidateSession(ctx, sessionId) {
		err := fmt.Errorf("unknown session %s", sessionId)
		log.Error("Failed validation before saving exchange", "err", err)
		return err
	}

	err := s.store.ListPush(ctx, historyKey(sessionId), formatExchange(question, answer))
	if err != nil {
		log.Error("error saving exchange", "error:", err)
		return err
	}
	log.Debug("Saved exchange successfully")
	return nil
}

// GetHistory returns the most recent exchanges oldest first, ready to drop
// into a prompt.
func (s *RedisSessionStore) GetHistory(ctx context.Context, sessionId string) ([]string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("Getting chat history")

	res, err := s.store.ListGetRecent(ctx, historyKey(sessionId))
	if err != nil {
		log.Error("Error getting history", "error:", err)
		return nil, err
	}
	return res, nil
}

func formatExchange(question string, answer string) string {
	return fmt.Sprintf("Student: %s\nAssistant: %s", question, answer)
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
