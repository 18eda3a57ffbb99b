package usecase

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/peng15653830a/springai-chat-sub004/internal/domain"
)

// userSafeMessage maps a streaming failure onto a message that can be shown
// to the end user. Provider SDK errors often embed keys or request ids, so
// nothing from the raw error text leaks through; classification relies on
// error types first and well-known substrings second.
func userSafeMessage(err error) string {
	if err == nil {
		return "the response ended unexpectedly"
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.UserMessage()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "the model took too long to respond, please try again"
	}
	if errors.Is(err, context.Canceled) {
		return "the request was cancelled"
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return "a network error occurred while contacting the model provider"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized"):
		return "the model provider rejected the configured credentials"
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return "the model provider is rate limiting requests, please retry shortly"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "the model took too long to respond, please try again"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "no such host") || strings.Contains(msg, "eof"):
		return "a network error occurred while contacting the model provider"
	default:
		return "an unexpected error occurred while generating the response"
	}
}
