// Package constants collects provider names and keys shared across layers.
package constants

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Notification channel providers.
const (
	NotificationProviderTelegram = "telegram"
	NotificationProviderFirebase = "firebase"
	NotificationProviderLog      = "log"
)

// Identity transport.
const (
	HeaderXSessionID  = "X-Session-Id"
	SessionCookieName = "sid"
)

// ReminderKeyPrefix prefixes the scheduler key of an order's confirmation reminder.
const ReminderKeyPrefix = "reminder_"
