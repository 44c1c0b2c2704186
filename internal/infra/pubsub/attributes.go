package pubsub

import "scrobbler/internal/domain/service"

// scrobbleAttributes are the message attributes subscribers filter and trace on.
func scrobbleAttributes(event *service.ScrobbleEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"user_id":  event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
