package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type NotificationService interface {
	// Notify is fire-and-forget: a failed insert is logged and never
	// fails the flow that triggered it.
	Notify(userID uint, notificationType, title, message, link string)
	List(userID uint, filter dto.NotificationFilterDTO) (*dto.NotificationListDTO, error)
	MarkRead(userID, id uint) error
	MarkAllRead(userID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(userID uint, notificationType, title, message, link string) {
	n := model.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if err := s.notificationRepo.Create(&n); err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("title", title).Msg("Failed to create notification")
	}
}

func (s *notificationService) List(userID uint, filter dto.NotificationFilterDTO) (*dto.NotificationListDTO, error) {
	page, limit := normalizePage(filter.Page, filter.Limit, 20)
	offset := (page - 1) * limit

	notifications, total, err := s.notificationRepo.FindByUser(userID, filter.IsRead, offset, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to list notifications")
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve notifications")
	}

	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeUnknown, "Failed to retrieve notifications")
	}

	items := make([]dto.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		var item dto.NotificationDTO
		if err := copier.Copy(&item, &n); err != nil {
			return nil, fmt.Errorf("error preparing notification response: %w", err)
		}
		items = append(items, item)
	}

	return &dto.NotificationListDTO{
		Notifications: items,
		UnreadCount:   unread,
		Pagination:    dto.NewPagination(page, limit, total),
	}, nil
}

func (s *notificationService) MarkRead(userID, id uint) error {
	if err := s.notificationRepo.MarkRead(userID, id); err != nil {
		if isNotFound(err) {
			return apperror.New(apperror.CodeNotFound, "Notification not found")
		}
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to update notification")
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID uint) error {
	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		return apperror.Wrap(err, apperror.CodeUnknown, "Failed to update notifications")
	}
	return nil
}
