package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender is the part of the FCM messaging client the notifier uses.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier publishes alerts to a Firebase Cloud Messaging topic that the
// user's devices subscribe to.
type FCMNotifier struct {
	sender Sender
	topic  string
}

// NewFCMNotifier initializes a Firebase app from a service account file and
// returns a notifier publishing to topic.
func NewFCMNotifier(ctx context.Context, credentialsFile, topic string) (*FCMNotifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging client: %w", err)
	}

	return NewFCMNotifierWithSender(msgClient, topic), nil
}

// NewFCMNotifierWithSender builds a notifier over an existing sender.
func NewFCMNotifierWithSender(sender Sender, topic string) *FCMNotifier {
	return &FCMNotifier{sender: sender, topic: topic}
}

// BudgetExceeded sends the alert as a push notification.
func (n *FCMNotifier) BudgetExceeded(ctx context.Context, alert Alert) error {
	msg := &messaging.Message{
		Topic: n.topic,
		Notification: &messaging.Notification{
			Title: alert.Title(),
			Body:  alert.Body(),
		},
		Data: alert.Data(),
	}

	if _, err := n.sender.Send(ctx, msg); err != nil {
		if messaging.IsInvalidArgument(err) {
			return fmt.Errorf("invalid FCM message for topic %q: %w", n.topic, err)
		}
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
