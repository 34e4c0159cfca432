package notification

import (
	"context"
	"html"
	"regexp"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	firebaseChannelName = "firebase"
	pushTitle           = "Storefront"
	// FCM caps the notification body well below the data payload limit.
	maxPushBodyRunes = 1000
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// topicSender is the subset of *messaging.Client the channel uses.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseChannel pushes notifications to an FCM topic the admin app subscribes to.
type firebaseChannel struct {
	client topicSender
	topic  string
}

// NewFirebaseChannel creates a topic push channel. An empty credentialsPath uses application default credentials.
func NewFirebaseChannel(ctx context.Context, projectID, credentialsPath, topic string) (*firebaseChannel, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseChannel{client: client, topic: topic}, nil
}

func (c *firebaseChannel) Name() string {
	return firebaseChannelName
}

// Send pushes the plain-text rendering as the notification body and the original HTML as data.
func (c *firebaseChannel) Send(ctx context.Context, text string) error {
	if _, err := c.client.Send(ctx, newTopicMessage(c.topic, text)); err != nil {
		return errors.Wrapf(err, "failed to send to topic %s", c.topic)
	}

	return nil
}

func newTopicMessage(topic, text string) *messaging.Message {
	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: pushTitle,
			Body:  plainText(text, maxPushBodyRunes),
		},
		Data: map[string]string{
			"format": "html",
			"body":   text,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
}

// plainText strips tags, unescapes entities and cuts the result to maxRunes.
func plainText(text string, maxRunes int) string {
	plain := strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(text, "")))

	runes := []rune(plain)
	if len(runes) <= maxRunes {
		return plain
	}

	return string(runes[:maxRunes-1]) + "…"
}
