package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Stale      bool        `json:"stale,omitempty"`
	BulkReport interface{} `json:"bulk_report,omitempty"`
}

type AttachmentURL struct {
	DocumentID string `json:"document_id"`
	URL        string `json:"url"`
	ExpiresIn  int    `json:"expires_in_seconds"`
}
