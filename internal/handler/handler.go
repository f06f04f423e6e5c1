package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"traffic-engine/internal/engine"
	"traffic-engine/internal/model"
)

// HandleEvaluation accepts a batch of raw sensor lines and responds with the
// aggregated report as JSON. Malformed lines inside the batch are skipped
// silently, same as on standard input; only the envelope is validated.
func HandleEvaluation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	var req model.EvaluationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Lines) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one line is required")
		return
	}

	start := time.Now()
	rep := engine.Process(req.Lines)
	elapsed := time.Since(start)
	now := time.Now().UTC()

	if rep.Vehicles == nil {
		rep.Vehicles = []*model.VehicleRecord{}
	}
	if rep.Tally.TypeCounts == nil {
		rep.Tally.TypeCounts = []model.TypeCount{}
	}

	resp := model.EvaluationResponse{
		ReportMetadata: model.ReportMetadata{
			ReportID:          uuid.New().String(),
			SourceID:          req.SourceID,
			ReportStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ReportCompletedAt: now.Format(time.RFC3339),
			ReportDurationMs:  elapsed.Milliseconds(),
			ReportOutcome:     model.OutcomeSuccess,
		},
		ReportResult: *rep,
	}

	body, err := json.Marshal(&resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
