// Package service defines ports for side effects the domain triggers but does not implement.
package service

import "context"

// NotificationChannel delivers a text message to a single operator-facing destination.
type NotificationChannel interface {
	// Send delivers text (HTML formatted) and returns the channel error, if any.
	Send(ctx context.Context, text string) error

	// Name identifies the channel in logs and metrics.
	Name() string
}
