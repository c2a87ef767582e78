package app

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

type Service struct {
	store SubscriberStore
	log   *slog.Logger
}

func NewService(store SubscriberStore, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Subscribe records the address, normalized to trimmed lowercase.
// Subscribing twice is a quiet success.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	added, err := s.store.Add(ctx, email)
	if err != nil {
		return err
	}
	if added {
		s.log.Info("newsletter subscription", slog.String("email", email))
	}
	return nil
}
