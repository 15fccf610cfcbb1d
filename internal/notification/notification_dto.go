package notification

// NotificationID may be supplied by callers that need idempotent creation,
// such as the booking lifecycle consumer. Left empty, a fresh id is assigned.
type CreateNotificationRequest struct {
	NotificationID string `json:"notification_id" binding:"omitempty,uuid"`
	UID            string `json:"u_id" binding:"required,uuid"`
	Text           string `json:"text" binding:"required"`
}

type UpdateNotificationRequest struct {
	Text string `json:"text" binding:"required"`
}

type NotificationResponse struct {
	NotificationID string `json:"notification_id" validate:"required,uuid"`
	UID            string `json:"u_id" validate:"required,uuid"`
	Text           string `json:"text" validate:"required"`
}

func toResponse(n *Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		UID:            n.UID,
		Text:           n.Text,
	}
}
