package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"fitbook/internal/database"
	"fitbook/internal/domain"
	"fitbook/internal/metrics"
	"fitbook/internal/middleware"
	"fitbook/internal/modules/booking"
	"fitbook/internal/modules/catalog"
	"fitbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Collectors register on the default registry once per test binary.
var testMetrics = metrics.New()

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	classes *repository.ClassRepository
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:", zerolog.Nop())
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	classRepo := repository.NewClassRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	logger := zerolog.Nop()

	bookingService := booking.NewService(bookingRepo, classRepo, "Asia/Kolkata", logger, testMetrics)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(classRepo, "Asia/Kolkata", logger)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Fitness Booking API is running!"})
	})

	root := r.Group("/")
	catalogHandler.RegisterRoutes(root)
	bookingHandler.RegisterRoutes(root)

	return &testServer{router: r, db: db, classes: classRepo}
}

func (s *testServer) seedClass(t *testing.T, name string, dt time.Time, instructor string, slots int) *domain.FitnessClass {
	t.Helper()

	cls := &domain.FitnessClass{Name: name, DateTime: dt, Instructor: instructor, AvailableSlots: slots}
	require.NoError(t, s.classes.Create(t.Context(), cls))
	return cls
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var e errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fitness Booking API is running!")
}

func TestBookingFlow_LastSlot(t *testing.T) {
	s := setupServer(t)
	cls := s.seedClass(t, "Yoga", time.Date(2025, 10, 6, 3, 30, 0, 0, time.UTC), "Anjali", 1)

	payload := map[string]interface{}{
		"class_id":     cls.ID,
		"client_name":  "Jane Doe",
		"client_email": "jane@x.com",
		"timezone":     "Asia/Kolkata",
		"local_time":   "2025-10-06 09:00",
	}

	w := s.do(t, http.MethodPost, "/book", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Message      string `json:"message"`
		ClassTimeUTC string `json:"class_time_utc"`
		Timezone     string `json:"timezone"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Booking successful", created.Message)
	assert.Equal(t, "2025-10-06T03:30:00Z", created.ClassTimeUTC)
	assert.Equal(t, "Asia/Kolkata", created.Timezone)

	// Slot count is now zero.
	w = s.do(t, http.MethodGet, "/classes?timezone=Asia/Kolkata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, float64(0), classes[0]["available_slots"])
	assert.Equal(t, "06-10-2025 09:00 AM", classes[0]["date_time"])

	// Same request again: class is full.
	w = s.do(t, http.MethodPost, "/book", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NO_SLOTS_AVAILABLE", decodeError(t, w).Error.Code)
}

func TestBook_ValidationFailures(t *testing.T) {
	s := setupServer(t)
	cls := s.seedClass(t, "Yoga", time.Date(2025, 10, 6, 3, 30, 0, 0, time.UTC), "Anjali", 5)

	base := func() map[string]interface{} {
		return map[string]interface{}{
			"class_id":     cls.ID,
			"client_name":  "Jane Doe",
			"client_email": "jane@x.com",
			"timezone":     "Asia/Kolkata",
			"local_time":   "2025-10-06 09:00",
		}
	}

	cases := []struct {
		name     string
		mutate   func(m map[string]interface{})
		wantCode int
		wantErr  string
	}{
		{"missing email", func(m map[string]interface{}) { delete(m, "client_email") }, 400, "MISSING_FIELDS"},
		{"bad email", func(m map[string]interface{}) { m["client_email"] = "a@b" }, 400, "INVALID_EMAIL"},
		{"bad name", func(m map[string]interface{}) { m["client_name"] = "J1" }, 400, "INVALID_NAME"},
		{"bad date", func(m map[string]interface{}) { m["local_time"] = "06-10-2025 09:00" }, 400, "INVALID_DATE_FORMAT"},
		{"unknown class", func(m map[string]interface{}) { m["class_id"] = 999 }, 404, "CLASS_NOT_FOUND"},
		{"bad timezone", func(m map[string]interface{}) { m["timezone"] = "Mars/Phobos" }, 400, "INVALID_TIMEZONE"},
		{"wrong date", func(m map[string]interface{}) { m["local_time"] = "2025-10-07 09:00" }, 400, "DATE_MISMATCH"},
	}

	for _, tc := range cases {
		payload := base()
		tc.mutate(payload)

		w := s.do(t, http.MethodPost, "/book", payload)
		assert.Equal(t, tc.wantCode, w.Code, tc.name)
		assert.Equal(t, tc.wantErr, decodeError(t, w).Error.Code, tc.name)
	}

	// Nothing above consumed a slot.
	w := s.do(t, http.MethodGet, "/classes", nil)
	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	assert.Equal(t, float64(5), classes[0]["available_slots"])
}

func TestClasses_EmptyAndTimezones(t *testing.T) {
	s := setupServer(t)

	// No data yet.
	w := s.do(t, http.MethodGet, "/classes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_DATA_FOUND", decodeError(t, w).Error.Code)

	s.seedClass(t, "Zumba", time.Date(2025, 10, 8, 3, 0, 0, 0, time.UTC), "Priya", 5)

	// Validated endpoint rejects a bad zone.
	w = s.do(t, http.MethodGet, "/classes-by-timezone?timezone=Mars/Phobos", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TIMEZONE", decodeError(t, w).Error.Code)

	// The plain endpoint surfaces the same zone as an opaque failure.
	w = s.do(t, http.MethodGet, "/classes?timezone=Mars/Phobos", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Error.Code)

	w = s.do(t, http.MethodGet, "/classes-by-timezone?timezone=UTC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	require.Len(t, classes, 1)
	assert.Equal(t, "08-10-2025 03:00 AM", classes[0]["date_time"])
}

func TestBookings_ListEndpoints(t *testing.T) {
	s := setupServer(t)
	cls := s.seedClass(t, "HIIT", time.Date(2025, 6, 20, 1, 30, 0, 0, time.UTC), "Shreyas", 2)

	// Email is mandatory on the per-client listing.
	w := s.do(t, http.MethodGet, "/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/bookings?email=jane@x.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_DATA_FOUND", decodeError(t, w).Error.Code)

	w = s.do(t, http.MethodGet, "/all-bookings", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	payload := map[string]interface{}{
		"class_id":     cls.ID,
		"client_name":  "Jane Doe",
		"client_email": "jane@x.com",
		"timezone":     "Asia/Kolkata",
		"local_time":   "2025-06-20 07:00",
	}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/book", payload).Code)

	w = s.do(t, http.MethodGet, "/bookings?email=jane@x.com&timezone=Asia/Kolkata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var mine []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "HIIT", mine[0]["class_name"])
	assert.Equal(t, "Shreyas", mine[0]["instructor"])
	assert.Equal(t, "20-06-2025 07:00 AM", mine[0]["date_time"])
	assert.NotContains(t, mine[0], "client_email")

	w = s.do(t, http.MethodGet, "/all-bookings?timezone=Asia/Kolkata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "Jane Doe", all[0]["client_name"])
	assert.Equal(t, "jane@x.com", all[0]["client_email"])
}
