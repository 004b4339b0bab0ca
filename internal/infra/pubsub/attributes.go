package pubsub

import "contacts/internal/domain/service"

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
// The local publisher produces it and the event worker decodes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are copied onto every message for filtering and tracing.
func eventAttributes(event *service.ContactEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID.String(),
		"type":     string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
