package response

// WebhookAck is the terminal acknowledgement Hotmart sees. Ignored and
// Duplicate mark accepted-but-not-recorded deliveries; redelivery is
// pointless either way.
type WebhookAck struct {
	OK        bool `json:"ok"`
	Ignored   bool `json:"ignored,omitempty"`
	Duplicate bool `json:"duplicate,omitempty"`
}
