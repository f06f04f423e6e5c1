package model

// EvaluationRequest is the HTTP body for a remote batch submission: the raw
// sensor lines exactly as they would appear on standard input.
type EvaluationRequest struct {
	SourceID string   `json:"source_id"`
	Lines    []string `json:"lines"`
}
