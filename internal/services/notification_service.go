package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/justsurfingit/hirehub/internal/common"
	"github.com/justsurfingit/hirehub/internal/models"
	"gorm.io/gorm"
)

type NotificationService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewNotificationService(db *gorm.DB, log *slog.Logger) *NotificationService {
	return &NotificationService{DB: db, log: log}
}

// List returns the account's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, accountID string) ([]models.Notification, error) {
	var notes []models.Notification
	err := s.DB.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// MarkRead flags one of the caller's own notifications as read. A
// notification owned by someone else is indistinguishable from a missing one.
func (s *NotificationService) MarkRead(ctx context.Context, accountID, notificationID string) error {
	now := time.Now()
	res := s.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND account_id = ?", notificationID, accountID).
		Updates(map[string]interface{}{"read": true, "read_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.NotFound("Notification not found")
	}
	return nil
}
