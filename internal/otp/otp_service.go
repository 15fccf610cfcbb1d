package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	otperrors "github.com/Vectus-Drive/backend/internal/otp/errors"
)

// Codes are uniform over [111111, 999999], a fixed six-digit width.
const (
	codeMin = 111111
	codeMax = 999999
)

type Config struct {
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

func DefaultConfig() Config {
	return Config{
		TTL:          5 * time.Minute,
		MaxAttempts:  5,
		ResendWindow: 30 * time.Second,
	}
}

//go:generate mockgen -source=otp_service.go -destination=mock/otp_service_mock.go -package=mock
type Service interface {
	// GenerateAndSend creates a code for the address, stores it with a TTL
	// and emails it. A pending resend window rejects rapid re-requests.
	GenerateAndSend(ctx context.Context, email string) error
	// Validate compares a submitted code against the stored one. Codes are
	// single-use: a successful validation consumes the session.
	Validate(ctx context.Context, email, code string) (bool, error)
}

// Sessions are keyed per destination address with an expiry, so concurrent
// verification flows stay independent of each other.
type service struct {
	rdb    *redis.Client
	mailer Mailer
	cfg    Config
	logger *zap.Logger
}

func NewService(rdb *redis.Client, mailer Mailer, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("otp.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("otp.service")
	}
	return &service{rdb: rdb, mailer: mailer, cfg: cfg, logger: l}
}

func codeKey(email string) string     { return "otp:" + email }
func attemptsKey(email string) string { return "otp:att:" + email }
func resendKey(email string) string   { return "otp:res:" + email }

func (s *service) GenerateAndSend(ctx context.Context, email string) error {
	ttl, err := s.rdb.TTL(ctx, resendKey(email)).Result()
	if err == nil && ttl > 0 {
		return otperrors.ErrResendThrottled
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, codeKey(email), code, s.cfg.TTL).Err(); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, attemptsKey(email), 0, s.cfg.TTL).Err(); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, resendKey(email), 1, s.cfg.ResendWindow).Err(); err != nil {
		return err
	}

	if err := s.mailer.SendCode(email, code); err != nil {
		// Undo the session so a failed delivery does not lock the address out.
		s.rdb.Del(ctx, codeKey(email), attemptsKey(email), resendKey(email))
		s.logger.Error("otp delivery failed", zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("otp sent", zap.String("email", email))
	return nil
}

func (s *service) Validate(ctx context.Context, email, code string) (bool, error) {
	// The session check comes first so submissions against an address that
	// never requested a code leave no counter key behind.
	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if err == redis.Nil {
		return false, otperrors.ErrCodeNotFound
	}
	if err != nil {
		return false, err
	}

	attempts, err := s.rdb.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return false, err
	}
	if attempts > int64(s.cfg.MaxAttempts) {
		s.rdb.Del(ctx, codeKey(email), attemptsKey(email))
		return false, otperrors.ErrTooManyAttempts
	}

	if stored != code {
		return false, nil
	}

	s.rdb.Del(ctx, codeKey(email), attemptsKey(email))
	return true, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
