package dto

import "time"

type NotificationFilterDTO struct {
	IsRead *bool `form:"is_read"`
	Page   int   `form:"page,default=1"`
	Limit  int   `form:"limit,default=20"`
}

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListDTO struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int64             `json:"unread_count"`
	Pagination    Pagination        `json:"pagination"`
}
