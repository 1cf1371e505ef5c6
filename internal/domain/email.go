package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TimetableEmailData holds data for the weekly timetable digest.
type TimetableEmailData struct {
	Email      string
	Name       string
	Days       []DaySchedule
	ClassCount int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTimetable(ctx context.Context, data *TimetableEmailData) error
}
