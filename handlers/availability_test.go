package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"randevio/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailability struct {
	day *availability.DayAvailability
	err error
}

func (f *fakeAvailability) ForDay(businessID, date, staffID string) (*availability.DayAvailability, error) {
	return f.day, f.err
}

func (f *fakeAvailability) InvalidateDay(businessID string, day time.Time) {}

func availabilityRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/availability", AvailabilityHandler(svc))
	return r
}

func TestAvailabilityHandler_MissingParams(t *testing.T) {
	r := availabilityRouter(&fakeAvailability{})

	for _, target := range []string{
		"/availability",
		"/availability?businessId=biz-1",
		"/availability?date=2026-04-15",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestAvailabilityHandler_InvalidDateIsClientError(t *testing.T) {
	svc := &fakeAvailability{err: fmt.Errorf("%w: %q", availability.ErrInvalidDate, "15.04.2026")}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?businessId=biz-1&date=15.04.2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityHandler_StoreFailureIsServerError(t *testing.T) {
	svc := &fakeAvailability{err: fmt.Errorf("failed to load appointments: connection reset")}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?businessId=biz-1&date=2026-04-15", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The response stays generic; the cause goes to the log, not the client.
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestAvailabilityHandler_OK(t *testing.T) {
	svc := &fakeAvailability{day: &availability.DayAvailability{
		Date:              "2026-04-15",
		BookedSlots:       []string{"09:00", "09:30"},
		TotalAppointments: 2,
	}}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?businessId=biz-1&date=2026-04-15", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		BookedSlots       []string `json:"bookedSlots"`
		TotalAppointments int      `json:"totalAppointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "09:30"}, body.BookedSlots)
	assert.Equal(t, 2, body.TotalAppointments)
}
