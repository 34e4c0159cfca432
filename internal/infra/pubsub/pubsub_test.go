package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.OrderEventCreated,
		OrderID:    "6f1c1a4e-8a0e-4d55-9a3c-0f3b5f2f9f10",
		Status:     "Pending",
		Total:      "5000.00",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())

	publisher, err = NewEventPublisher(newParams(t, &config.PubSubConfig{}))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "orders"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "shop"},
			wantErr: "topic ID is required",
		},
		{
			name:    "rabbitmq without url",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, RabbitMQExchange: "orders"},
			wantErr: "rabbitmq url is required",
		},
		{
			name:    "rabbitmq without exchange",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ, RabbitMQURL: "amqp://localhost"},
			wantErr: "rabbitmq exchange is required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	params := newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: server.URL})
	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)

	event := newTestEvent()
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": "order.created",
		"order_id":   event.OrderID,
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewAMQPMessage(t *testing.T) {
	event := newTestEvent()
	msg := newAMQPMessage(event, []byte(`{}`))

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "evt-1", msg.MessageId)
	assert.Equal(t, "req-1", msg.CorrelationId)
	assert.Equal(t, "order.created", msg.Type)
	assert.Equal(t, event.OccurredAt, msg.Timestamp)
	assert.Equal(t, event.OrderID, msg.Headers["order_id"])
	assert.Equal(t, []byte(`{}`), msg.Body)
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)
	assert.NotContains(t, attrs, "request_id")
	assert.Len(t, attrs, 3)
}
