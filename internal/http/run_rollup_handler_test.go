package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appliance-analytics/internal/schedulers"
	schedmocks "appliance-analytics/internal/schedulers/mocks"
	"appliance-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunRollupHandler_Handle_EmptyBodyDefaultsDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := schedmocks.NewMockBatchRunner(ctrl)
	handler := NewRunRollupHandler(mockRunner)

	req := httptest.NewRequest(http.MethodPost, "/rollups/run", nil)
	rr := httptest.NewRecorder()

	mockRunner.EXPECT().
		ManualRollup(gomock.Any(), nil).
		Return(&schedulers.RunSummary{
			RunID:            "01HQZX0000000000000000000A",
			Date:             time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			DevicesProcessed: 3,
		})

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)

	var summary schedulers.RunSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "01HQZX0000000000000000000A", summary.RunID)
	assert.Equal(t, 3, summary.DevicesProcessed)
}

func TestRunRollupHandler_Handle_ExplicitDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := schedmocks.NewMockBatchRunner(ctrl)
	handler := NewRunRollupHandler(mockRunner)

	req := httptest.NewRequest(http.MethodPost, "/rollups/run", bytes.NewReader([]byte(`{"date":"2024-03-10"}`)))
	rr := httptest.NewRecorder()

	expected := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	mockRunner.EXPECT().
		ManualRollup(gomock.Any(), &expected).
		Return(&schedulers.RunSummary{Date: expected})

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestRunRollupHandler_Handle_MalformedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := schedmocks.NewMockBatchRunner(ctrl)
	handler := NewRunRollupHandler(mockRunner)

	req := httptest.NewRequest(http.MethodPost, "/rollups/run", bytes.NewReader([]byte(`{not json`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidRequestBody, svcErr.Code)
}

func TestRunRollupHandler_Handle_InvalidDate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := schedmocks.NewMockBatchRunner(ctrl)
	handler := NewRunRollupHandler(mockRunner)

	req := httptest.NewRequest(http.MethodPost, "/rollups/run", bytes.NewReader([]byte(`{"date":"03/14/2024"}`)))
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidDate, svcErr.Code)
}
