package notification

import (
	"context"
	"fmt"

	userRepo "randevio/database/repository/user"
	"randevio/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Notifier defines push delivery to a user's registered device.
type Notifier interface {
	// PushToUser sends a data-bearing notification to the user's device.
	// Users without a registered token are skipped silently.
	PushToUser(userID, title, body string, data map[string]string) error
}

// FCMNotifier delivers pushes through Firebase Cloud Messaging.
type FCMNotifier struct {
	Users userRepo.UserRepository
}

func (n *FCMNotifier) PushToUser(userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("fcm client not initialized")
	}

	user, err := n.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if user == nil || user.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(context.Background(), msg); err != nil {
		return fmt.Errorf("failed to send push to user %s: %w", userID, err)
	}
	utils.GetLogger().Debug("push sent", zap.String("userID", userID), zap.String("title", title))
	return nil
}
