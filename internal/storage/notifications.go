package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/sol1corejz/ecotrack/internal/models"
)

const unreadNotificationsCap = 100

func CreateNotification(ctx context.Context, userID uuid.UUID, message, notificationType string) error {

	_, err := DB.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, message, type) VALUES ($1, $2, $3, $4);
	`, uuid.New(), userID, message, notificationType)

	return err
}

func GetUnreadNotifications(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {

	var notifications []models.Notification

	rows, err := DB.QueryContext(ctx, `
		SELECT id, user_id, message, type, is_read, created_at
		FROM notifications WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC LIMIT $2;
	`, userID, unreadNotificationsCap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var n models.Notification
		err = rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead is idempotent: re-marking a read notification affects
// zero rows and is still a success.
func MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) error {

	_, err := DB.ExecContext(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1;
	`, notificationID)

	return err
}
