package service

// MetricsRecorder receives counters for business operations.
type MetricsRecorder interface {
	// RecordOrderOperation counts an order operation ("checkout", "confirm", ...) by outcome.
	RecordOrderOperation(operation, status string)

	// RecordNotification counts a notification delivery attempt.
	RecordNotification(channel, kind, result string)
}
