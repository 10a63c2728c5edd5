package support

import (
	"context"
	"errors"
	"log"

	"joyit/internal/domain"
	"joyit/internal/pkg/validator"
	"joyit/internal/repository"
)

var ErrValidation = errors.New("validation error")

// Mailer forwards a support request to the operations inbox. The default
// implementation just logs; SMTP wiring is a deploy-time concern.
type Mailer interface {
	SendSupportRequest(ctx context.Context, req *domain.SupportRequest) error
}

type LogMailer struct{}

func (LogMailer) SendSupportRequest(_ context.Context, req *domain.SupportRequest) error {
	log.Printf("support request company=%d subject=%q", req.CompanyID, req.Subject)
	return nil
}

type Service struct {
	repo   *repository.SupportRepository
	mailer Mailer
}

func NewService(repo *repository.SupportRepository, mailer Mailer) *Service {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Service{repo: repo, mailer: mailer}
}

type CreateRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *Service) Create(ctx context.Context, companyID, userID int64, req CreateRequest) (*domain.SupportRequest, error) {
	sr := &domain.SupportRequest{
		CompanyID: companyID,
		UserID:    userID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    domain.SupportOpen,
	}
	if errs := validator.Validate(sr); errs != nil {
		return nil, ErrValidation
	}
	if err := s.repo.Create(ctx, sr); err != nil {
		return nil, err
	}

	// Delivery failure must not fail the request; the row is the source
	// of truth.
	if err := s.mailer.SendSupportRequest(ctx, sr); err != nil {
		log.Printf("support mail delivery failed: %v", err)
	}

	return sr, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]domain.SupportRequest, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *Service) Close(ctx context.Context, id int64) error {
	return s.repo.Close(ctx, id)
}
