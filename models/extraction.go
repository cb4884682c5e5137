package models

// ExtractionResult is the description and tag list parsed from the model reply
type ExtractionResult struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ErrorBody is the payload returned on every failed request
type ErrorBody struct {
	Error string `json:"error"`
}
