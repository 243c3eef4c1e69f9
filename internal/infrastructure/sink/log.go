// Package sink holds destinations for accepted contact inquiries.
package sink

import (
	"context"
	"time"

	"github.com/tebramedicals/medtech-site/internal/domain"
	"go.uber.org/zap"
)

// LogSink records inquiries in the application log and sends them nowhere else.
// It stands in until a real submission endpoint exists.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the inquiry.
func (s *LogSink) Deliver(ctx context.Context, inquiry *domain.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("contact form submitted",
		zap.String("inquiry_id", inquiry.ID.String()),
		zap.Time("received_at", inquiry.ReceivedAt.UTC().Truncate(time.Millisecond)),
		zap.String("name", inquiry.Form.Name),
		zap.String("email", inquiry.Form.Email),
		zap.String("company", inquiry.Form.Company),
		zap.String("phone", inquiry.Form.Phone),
		zap.String("subject", inquiry.Form.Subject),
		zap.String("message", inquiry.Form.Message),
	)
	return nil
}
