package models

// UploadedFile is the multipart file part of a create-order request.
type UploadedFile struct {
	Name string
	Data []byte
}

// CreateOrderRequest carries the raw form values; the order workflow owns
// their validation and defaults.
type CreateOrderRequest struct {
	File      *UploadedFile
	ColorMode string
	Copies    string
}

// YocoWebhookEvent is the subset of the Yoco event envelope the service reads.
type YocoWebhookEvent struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Payload struct {
		ID       string            `json:"id"`
		Status   string            `json:"status"`
		Metadata map[string]string `json:"metadata,omitempty"`
	} `json:"payload"`
}
