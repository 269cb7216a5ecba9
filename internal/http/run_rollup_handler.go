package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/schedulers"
)

// runRollupRequest is the optional body of POST /rollups/run. An empty body
// (or omitted date) rolls up yesterday UTC, matching the scheduled path.
type runRollupRequest struct {
	Date string `json:"date"`
}

type runRollupHandler struct {
	batchRunner schedulers.BatchRunner
}

// NewRunRollupHandler creates the operator backfill endpoint. Repeating a
// run for the same date is safe: the rollup path is upsert-idempotent.
func NewRunRollupHandler(batchRunner schedulers.BatchRunner) AppHttpHandler {
	return &runRollupHandler{
		batchRunner: batchRunner,
	}
}

// Handle processes POST /rollups/run requests.
func (h *runRollupHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	date, err := parseOptionalDate(r.Body)
	if err != nil {
		return err
	}

	summary := h.batchRunner.ManualRollup(r.Context(), date)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(summary)
}

func parseOptionalDate(body io.Reader) (*time.Time, error) {
	data, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return nil, errInvalidRequestBody(err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var req runRollupRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errInvalidRequestBody(err)
	}
	if req.Date == "" {
		return nil, nil
	}

	day, err := models.ParseDayKey(req.Date)
	if err != nil {
		return nil, errInvalidDate(req.Date, err)
	}
	return &day, nil
}
