package dto

type SpamCheckRequest struct {
	Body           string   `json:"body"`
	Keywords       []string `json:"keywords,omitempty"`
	UseRemoteCheck *bool    `json:"use_remote_check,omitempty"` // default true
}

type SpamCheckResponse struct {
	Spam   bool   `json:"spam"`
	Reason string `json:"reason"`
}
