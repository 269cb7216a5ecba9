package http

import (
	"encoding/json"
	"net/http"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// defaultListRangeDays bounds the range returned when from/to are omitted.
const defaultListRangeDays = 30

// listRollupsResponse is the dashboard feed for one device.
type listRollupsResponse struct {
	DeviceID string                `json:"deviceId"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Rollups  []*models.DailyRollup `json:"rollups"`
}

type listRollupsHandler struct {
	rollupStore stores.RollupStore
	now         func() time.Time
}

func NewListRollupsHandler(rollupStore stores.RollupStore) AppHttpHandler {
	return &listRollupsHandler{
		rollupStore: rollupStore,
		now:         time.Now,
	}
}

// Handle processes GET /devices/{deviceID}/rollups requests.
func (h *listRollupsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		return errMissingDeviceID()
	}

	to := models.DayUTC(h.now())
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := models.ParseDayKey(raw)
		if err != nil {
			return errInvalidDate(raw, err)
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -(defaultListRangeDays - 1))
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := models.ParseDayKey(raw)
		if err != nil {
			return errInvalidDate(raw, err)
		}
		from = parsed
	}

	if from.After(to) {
		return errInvalidDateRange(models.DayKey(from), models.DayKey(to))
	}

	rollups, err := h.rollupStore.ListRange(r.Context(), deviceID, from, to)
	if err != nil {
		return errInternalRollupListFailed(err)
	}
	if rollups == nil {
		rollups = []*models.DailyRollup{}
	}

	response := listRollupsResponse{
		DeviceID: deviceID,
		From:     models.DayKey(from),
		To:       models.DayKey(to),
		Rollups:  rollups,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response)
}
