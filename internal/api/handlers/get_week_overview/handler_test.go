package get_week_overview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getWeekOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_overview"
)

type fakeUseCase struct {
	req  *getWeekOverview.Request
	resp *getWeekOverview.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getWeekOverview.Request) (*getWeekOverview.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/salons/{salonId}/schedule/week", h.Handle).Methods(http.MethodGet)
	return r
}

func testResponse() *getWeekOverview.Response {
	return &getWeekOverview.Response{
		SalonID:   1,
		WeekStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Open:      "09:00",
		Close:     "18:00",
		Slots:     nil,
		Days:      nil,
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/schedule/week?offset=2&branchId=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Параметры запроса дошли до use case
	require.NotNil(t, uc.req)
	assert.Equal(t, int64(1), uc.req.SalonID)
	assert.Equal(t, 2, uc.req.WeekOffset)
	require.NotNil(t, uc.req.BranchID)
	assert.Equal(t, int64(10), *uc.req.BranchID)

	var body WeekOverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-02", body.WeekStart)
	assert.Equal(t, "09:00", body.Open)
}

func TestHandle_DefaultOffset(t *testing.T) {
	uc := &fakeUseCase{resp: testResponse()}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/schedule/week", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, 0, uc.req.WeekOffset)
	assert.Nil(t, uc.req.BranchID)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "non-numeric salon id", url: "/api/v1/salons/abc/schedule/week"},
		{name: "non-numeric offset", url: "/api/v1/salons/1/schedule/week?offset=xx"},
		{name: "non-numeric branch id", url: "/api/v1/salons/1/schedule/week?branchId=xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewHandler(&fakeUseCase{resp: testResponse()}, nopLogger{}))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "salon not found", err: getWeekOverview.ErrSalonNotFound, expected: http.StatusNotFound},
		{name: "branch not found", err: getWeekOverview.ErrBranchNotFound, expected: http.StatusNotFound},
		{name: "malformed schedule", err: getWeekOverview.ErrMalformedSchedule, expected: http.StatusUnprocessableEntity},
		{name: "invalid input", err: getWeekOverview.ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "internal error", err: getWeekOverview.ErrInternal, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/salons/1/schedule/week", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
