package events

import (
	"context"
	"fmt"
	"html"
	"strings"

	"pressroom/config"
	"pressroom/internal/domain/service"
)

// mailSubscriber turns domain events into transactional emails. Delivery
// failures surface as errors so the dispatcher logs them; they never reach
// the operation that emitted the event.
type mailSubscriber struct {
	mailer          service.Mailer
	frontendBaseURL string
}

// NewMailSubscriber builds the outbound email fan-out.
func NewMailSubscriber(cfg *config.Config, mailer service.Mailer) Subscriber {
	return &mailSubscriber{
		mailer:          mailer,
		frontendBaseURL: strings.TrimSuffix(cfg.Frontend.BaseURL, "/"),
	}
}

func (s *mailSubscriber) Name() string {
	return "mail"
}

func (s *mailSubscriber) Handle(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case service.EventPasswordResetRequested:
		return s.sendPasswordReset(ctx, event)
	case service.EventStoryReviewed:
		return s.sendReviewOutcome(ctx, event)
	case service.EventWaitlistNotified:
		return s.sendWaitlistInvite(ctx, event)
	case service.EventAdminCreated:
		return s.sendAdminWelcome(ctx, event)
	}

	return nil
}

func (s *mailSubscriber) sendPasswordReset(ctx context.Context, event *service.Event) error {
	resetURL := event.Fields["resetUrl"]
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Someone requested a password reset for your account. "+
			"The link below is valid for one hour and can be used once.</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		html.EscapeString(event.Fields["name"]), resetURL,
	)

	return s.mailer.Send(ctx, &service.Email{
		To:      []string{event.Fields["email"]},
		Subject: "Reset your password",
		HTML:    body,
		Text:    "Reset your password (valid one hour): " + resetURL,
	})
}

func (s *mailSubscriber) sendReviewOutcome(ctx context.Context, event *service.Event) error {
	to := event.Fields["submitterEmail"]
	if to == "" {
		return nil
	}

	title := html.EscapeString(event.Fields["title"])
	var subject, body string
	switch event.Fields["status"] {
	case "rejected":
		subject = "Update on your story submission"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Thank you for submitting %q. We are unable to publish it this time.</p>",
			html.EscapeString(event.Fields["submitterName"]), title,
		)
		if reason := event.Fields["rejectionReason"]; reason != "" {
			body += fmt.Sprintf("<p>Reviewer note: %s</p>", html.EscapeString(reason))
		}
	case "approved", "published":
		subject = "Your story was accepted"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Good news: %q was accepted and will appear on the site.</p>",
			html.EscapeString(event.Fields["submitterName"]), title,
		)
	default:
		return nil
	}

	return s.mailer.Send(ctx, &service.Email{
		To:      []string{to},
		Subject: subject,
		HTML:    body,
	})
}

func (s *mailSubscriber) sendWaitlistInvite(ctx context.Context, event *service.Event) error {
	return s.mailer.Send(ctx, &service.Email{
		To:      []string{event.Fields["email"]},
		Subject: "You're off the waitlist",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your spot is ready. Head over to <a href=%q>%s</a> to get started.</p>",
			html.EscapeString(event.Fields["firstName"]), s.frontendBaseURL, s.frontendBaseURL,
		),
	})
}

func (s *mailSubscriber) sendAdminWelcome(ctx context.Context, event *service.Event) error {
	loginURL := s.frontendBaseURL + "/admin/login"

	return s.mailer.Send(ctx, &service.Email{
		To:      []string{event.Fields["email"]},
		Subject: "Your admin account is ready",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>An admin account with the %s role was created for you. "+
				"Sign in at <a href=%q>%s</a> with the password you were given, "+
				"then change it from your profile.</p>",
			html.EscapeString(event.Fields["name"]), html.EscapeString(event.Fields["role"]),
			loginURL, loginURL,
		),
	})
}
