package service

import (
	"context"
	"log/slog"

	"github.com/fractalglobal/fgc/internal/devserver/domain"
	"github.com/fractalglobal/fgc/pkg/slogx"
)

// Mailer delivers single-use email keys to users.
type Mailer interface {
	SendEmailKey(ctx context.Context, to string, purpose domain.KeyPurpose, key string) error
}

// LogMailer writes keys to the request logger instead of sending mail. The
// dev server has no mail transport; developers copy keys from the log.
type LogMailer struct{}

func (LogMailer) SendEmailKey(ctx context.Context, to string, purpose domain.KeyPurpose, key string) error {
	slogx.FromContext(ctx).Info("email key issued",
		slog.String("to", to),
		slog.String("purpose", string(purpose)),
		slog.String("key", key),
	)
	return nil
}
