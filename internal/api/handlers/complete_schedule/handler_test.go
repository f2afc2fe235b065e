package complete_schedule

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/middleware"
	completeSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/complete_schedule"
	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *completeSchedule.Request) (*completeSchedule.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*completeSchedule.Response), args.Error(1)
}

func serve(uc CompleteScheduleUseCase, path string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/stores/{storeId}/schedules/{scheduleId}/complete", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	req.Header.Set(middleware.UserIDHeader, uuid.NewString())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := new(mockUseCase)
	storeID, scheduleID := uuid.New(), uuid.New()
	completedAt := time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *completeSchedule.Request) bool {
		return req.StoreID == storeID && req.ScheduleID == scheduleID
	})).Return(&completeSchedule.Response{ScheduleID: scheduleID, CompletedAt: completedAt}, nil)

	w := serve(uc, "/stores/"+storeID.String()+"/schedules/"+scheduleID.String()+"/complete")

	require.Equal(t, http.StatusOK, w.Code)
	var got CompleteScheduleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.True(t, got.Completed)
	assert.True(t, completedAt.Equal(got.CompletedAt))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: completeSchedule.ErrTooEarly, wantStatus: http.StatusBadRequest},
		{err: completeSchedule.ErrAlreadyCompleted, wantStatus: http.StatusConflict},
		{err: completeSchedule.ErrScheduleNotFound, wantStatus: http.StatusNotFound},
		{err: completeSchedule.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: completeSchedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(uc, "/stores/"+uuid.NewString()+"/schedules/"+uuid.NewString()+"/complete")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
