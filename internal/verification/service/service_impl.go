package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tapetashop/tapeta/internal/config"
	"github.com/tapetashop/tapeta/internal/verification/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg    config.Config
	Log    *zap.Logger
	Redis  *redis.Client
	Sender domain.Sender
}

type Service struct {
	log    *zap.Logger
	redis  *redis.Client
	sender domain.Sender
	ttl    time.Duration
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("verification.service"),
		redis:  p.Redis,
		sender: p.Sender,
		ttl:    p.Cfg.VerificationCodeTTL,
	}
}

func codeKey(phoneNumber string) string {
	return "verification_code:" + phoneNumber
}

func generateCode() (string, error) {
	// Six digits, never starting with zero.
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func (s *Service) SendCode(ctx context.Context, phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return domain.ErrInvalidPhone
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := s.redis.Set(ctx, codeKey(phoneNumber), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	if err := s.sender.Send(ctx, phoneNumber, "Your verification code: "+code); err != nil {
		return fmt.Errorf("send code: %w", err)
	}

	s.log.Info("verification code sent", zap.String("phone_number", phoneNumber))
	return nil
}

func (s *Service) VerifyCode(ctx context.Context, phoneNumber, code string) (bool, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" || code == "" {
		return false, domain.ErrInvalidPhone
	}

	stored, err := s.redis.Get(ctx, codeKey(phoneNumber)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read code: %w", err)
	}
	return stored == code, nil
}
