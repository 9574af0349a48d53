package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// StoreVerificationCode stores an OTP code under the given kind ("email" or
// "sms") and recipient, expiring after ttl.
func StoreVerificationCode(ctx context.Context, kind, recipient, code string, ttl time.Duration) error {
	key := fmt.Sprintf("otp:%s:%s", kind, recipient)
	if err := client.Set(ctx, key, code, ttl).Err(); err != nil {
		logger.Error("Failed to store verification code", err, map[string]interface{}{
			"kind": kind,
		})
		return err
	}
	return nil
}

// CheckVerificationCode verifies a stored OTP code. A matching code is
// consumed so it cannot be replayed.
func CheckVerificationCode(ctx context.Context, kind, recipient, code string) (bool, error) {
	key := fmt.Sprintf("otp:%s:%s", kind, recipient)
	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to read verification code", err, nil)
		return false, err
	}
	if val != code {
		return false, nil
	}

	client.Del(ctx, key)
	return true, nil
}

// Codes adapts the verification-code helpers to the service layer's
// CodeStore interface.
type Codes struct{}

func NewCodes() *Codes {
	return &Codes{}
}

func (Codes) Store(ctx context.Context, kind, recipient, code string, ttl time.Duration) error {
	return StoreVerificationCode(ctx, kind, recipient, code, ttl)
}

func (Codes) Check(ctx context.Context, kind, recipient, code string) (bool, error) {
	return CheckVerificationCode(ctx, kind, recipient, code)
}

// Locker takes short-lived per-key locks, used to serialize duplicate-phone
// checks during vendor registration.
type Locker struct{}

func NewLocker() *Locker {
	return &Locker{}
}

// Acquire takes the lock for key. Returns false when another request holds
// it. The ttl bounds how long a crashed holder can block others.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		logger.Error("Failed to acquire lock", err, map[string]interface{}{
			"key": key,
		})
		return false, err
	}
	return ok, nil
}

// Release releases the lock for key.
func (l *Locker) Release(ctx context.Context, key string) {
	if err := client.Del(ctx, "lock:"+key).Err(); err != nil {
		logger.Error("Failed to release lock", err, map[string]interface{}{
			"key": key,
		})
	}
}
