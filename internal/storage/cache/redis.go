package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DanRulev/conceptbot/internal/config"
	"github.com/DanRulev/conceptbot/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

// RedisSessions stores quiz sessions as JSON under prefix+userID. Idle sessions
// expire through the key TTL instead of a reaper.
type RedisSessions struct {
	rdb    goredis.Cmdable
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisSessions(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisSessions, *goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisSessions(rdb, cfg.Prefix, ttl), rdb, nil
}

func newRedisSessions(rdb goredis.Cmdable, prefix string, ttl time.Duration) *RedisSessions {
	return &RedisSessions{rdb: rdb, prefix: prefix, ttl: ttl, now: time.Now}
}

func (r *RedisSessions) key(userID int64) string {
	return r.prefix + strconv.FormatInt(userID, 10)
}

func (r *RedisSessions) SetSession(ctx context.Context, session models.QuizSession) error {
	session.UpdatedAt = r.now()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.rdb.Set(ctx, r.key(session.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session for user %d: %w", session.UserID, err)
	}
	return nil
}

func (r *RedisSessions) GetSession(ctx context.Context, userID int64) (models.QuizSession, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return models.QuizSession{}, false, nil
		}
		return models.QuizSession{}, false, fmt.Errorf("failed to load session for user %d: %w", userID, err)
	}

	var session models.QuizSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.QuizSession{}, false, fmt.Errorf("failed to decode session for user %d: %w", userID, err)
	}
	return session, true, nil
}

func (r *RedisSessions) DeleteSession(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session for user %d: %w", userID, err)
	}
	return nil
}
