package service

import (
	"context"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, contractID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.ListByContract(ctx, contractID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID)
}
