package request

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(NewService(repository.NewRequestRepository(db)))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/requests"))
	return router, db
}

func seedRequest(t *testing.T, db *gorm.DB) (domain.User, domain.City, domain.Request) {
	t.Helper()

	city := domain.City{Name: "Berlin"}
	require.NoError(t, db.Create(&city).Error)
	user := domain.User{Name: "Alice Meyer", Email: "alice@corp.example", Role: "employee"}
	require.NoError(t, db.Create(&user).Error)

	req := domain.Request{
		UserID:      user.ID,
		CityID:      city.ID,
		BookingType: domain.BookingIndividual,
		DateFrom:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Status:      domain.RequestPending,
		Timestamp:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(&req).Error)
	return user, city, req
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListEndpointEnvelope(t *testing.T) {
	router, db := setupRouter(t)
	seedRequest(t, db)

	w := performRequest(router, http.MethodGet, "/api/requests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool          `json:"success"`
		Requests []RequestView `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Requests, 1)
	assert.Equal(t, "pending", body.Requests[0].Status)
	assert.Equal(t, "Berlin", body.Requests[0].City)
	assert.Empty(t, body.Requests[0].AssignedAccommodations)
}

func TestApproveEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	user, city, req := seedRequest(t, db)

	w := performRequest(router, http.MethodPost,
		"/api/requests/42424242/approve", gin.H{"remarks": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodPost,
		"/api/requests/"+strconv.FormatInt(req.ID, 10)+"/approve",
		gin.H{"apartment_id": 7, "remarks": "have fun"})
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Request
	require.NoError(t, db.First(&got, req.ID).Error)
	assert.Equal(t, domain.RequestApproved, got.Status)
	require.NotNil(t, got.ProcessedAt)

	var assignments []domain.AssignedAccommodation
	require.NoError(t, db.Find(&assignments).Error)
	require.Len(t, assignments, 1)
	assert.Equal(t, user.Email, assignments[0].UserEmail)
	assert.Equal(t, city.ID, assignments[0].CityID)
	require.NotNil(t, assignments[0].ApartmentID)
	assert.Equal(t, int64(7), *assignments[0].ApartmentID)
	assert.Nil(t, assignments[0].BedID)
}

func TestRejectEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	_, _, req := seedRequest(t, db)

	w := performRequest(router, http.MethodPost,
		"/api/requests/"+strconv.FormatInt(req.ID, 10)+"/reject",
		gin.H{"remarks": "fully booked"})
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Request
	require.NoError(t, db.First(&got, req.ID).Error)
	assert.Equal(t, domain.RequestRejected, got.Status)
	assert.Equal(t, "fully booked", got.Remarks)

	var count int64
	require.NoError(t, db.Model(&domain.AssignedAccommodation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExportEndpointReturnsCSV(t *testing.T) {
	router, db := setupRouter(t)
	_, _, req := seedRequest(t, db)

	// approve so the export has an assigned row
	w := performRequest(router, http.MethodPost,
		"/api/requests/"+strconv.FormatInt(req.ID, 10)+"/approve", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/api/requests/export",
		gin.H{"filters": gin.H{"city": "berlin"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "booking_history_")
	assert.Contains(t, w.Body.String(), "alice@corp.example")
}

