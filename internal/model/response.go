package model

type EvaluationResponse struct {
	ReportMetadata ReportMetadata `json:"report_metadata"`
	ReportResult   Report         `json:"report_result"`
}

type ReportMetadata struct {
	ReportID          string `json:"report_id"`
	SourceID          string `json:"source_id"`
	ReportStartedAt   string `json:"report_started_at"`
	ReportCompletedAt string `json:"report_completed_at"`
	ReportDurationMs  int64  `json:"report_duration_ms"`
	ReportOutcome     string `json:"report_outcome"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const OutcomeSuccess = "SUCCESS"
