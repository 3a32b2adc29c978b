package request

type TrackEventRequest struct {
	EventType string         `json:"event_type" binding:"required"`
	Page      string         `json:"page"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata"`
}
