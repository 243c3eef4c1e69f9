package usecase

import (
	"context"
	"fmt"

	"github.com/tebramedicals/medtech-site/internal/domain"
	"github.com/tebramedicals/medtech-site/internal/metrics"
)

// ContactService accepts contact form submissions.
type ContactService struct {
	sink domain.InquirySink
}

// NewContactService creates a contact service delivering to sink.
func NewContactService(sink domain.InquirySink) *ContactService {
	return &ContactService{sink: sink}
}

// Submit checks that every required field is present and hands the inquiry to
// the sink. Missing fields yield a *domain.ValidationError.
func (s *ContactService) Submit(ctx context.Context, form domain.ContactForm) (*domain.Inquiry, error) {
	if missing := form.Missing(); len(missing) > 0 {
		metrics.ContactInquiries.WithLabelValues("invalid").Inc()
		return nil, &domain.ValidationError{Fields: missing}
	}

	inquiry := &domain.Inquiry{Form: form}
	inquiry.InitMeta()

	if err := s.sink.Deliver(ctx, inquiry); err != nil {
		metrics.ContactInquiries.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("deliver inquiry %s: %w", inquiry.ID, err)
	}

	metrics.ContactInquiries.WithLabelValues("accepted").Inc()
	return inquiry, nil
}
