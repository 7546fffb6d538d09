package contact

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/logging"
)

const submitOperation = "contact.submit"

var _ command.Commander[SubmitMessage] = (*SubmitHandler)(nil)

// SubmitHandler relays contact submissions to a Mailer through the shared
// command handler foundation (timeout, logging, telemetry, error tagging).
type SubmitHandler struct {
	inner *commands.Handler[SubmitMessage]
}

// NewSubmitHandler creates a handler bound to the supplied mailer.
func NewSubmitHandler(mailer Mailer, logger logging.Logger, opts ...commands.HandlerOption[SubmitMessage]) *SubmitHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SubmitMessage) error {
		if mailer == nil {
			return errors.New("contact: mailer not configured")
		}
		if err := mailer.Send(ctx, msg); err != nil {
			return err
		}
		baseLogger.Info("contact.command.submit.relayed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SubmitMessage]{
		commands.WithLogger[SubmitMessage](baseLogger),
		commands.WithOperation[SubmitMessage](submitOperation),
		commands.WithMessageFields(func(msg SubmitMessage) map[string]any {
			// Only presence flags: submission content stays out of the logs.
			return map[string]any{
				"has_name":    msg.Name != "",
				"has_email":   msg.Email != "",
				"has_subject": msg.Subject != "",
				"has_message": msg.Message != "",
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SubmitMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SubmitMessage].
func (h *SubmitHandler) Execute(ctx context.Context, msg SubmitMessage) error {
	return h.inner.Execute(ctx, msg)
}
