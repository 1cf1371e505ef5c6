package services

import (
	"context"
	"fmt"

	"campustimetable/internal/domain"
)

const timetableTemplate = "timetable"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that renders templates and sends them through mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) SendTimetable(ctx context.Context, data *domain.TimetableEmailData) error {
	if data == nil || data.Email == "" {
		return fmt.Errorf("recipient email is required")
	}
	subject, html, text, err := s.renderer.Render(timetableTemplate, data)
	if err != nil {
		return fmt.Errorf("render %s email: %w", timetableTemplate, err)
	}
	return s.mailer.Send(ctx, data.Email, subject, html, text)
}
