package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type ListResponse struct {
	OK       bool `json:"ok"`
	Data     any  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
}

// GenerationFailureResponse reports a failed generation call and echoes
// the submitted fields so the client can re-present the form with the
// user's input intact.
type GenerationFailureResponse struct {
	Error     string      `json:"error"`
	Submitted ItemRequest `json:"submitted"`
}
