package domain

import (
	"context"
	"errors"
)

type Service interface {
	// SendCode generates a one-time code, stores it against the phone
	// number with a TTL and hands it to the SMS sender.
	SendCode(ctx context.Context, phoneNumber string) error
	// VerifyCode checks the submitted code against the stored one.
	VerifyCode(ctx context.Context, phoneNumber, code string) (bool, error)
}

// Sender delivers a short text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

var ErrInvalidPhone = errors.New("invalid_phone_number")
