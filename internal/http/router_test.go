package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "railway/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
		intconfig.DB = nil
	})
	intconfig.DB = conn

	return NewRouter(intconfig.LoadEnv()), mock
}

func bearerToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  "rider@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(intconfig.JWTSecret())
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	return "Bearer " + signed
}

func TestPNRStatusIsPublic(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("WHERE b.pnr_number = \\?").
		WithArgs("1234567890").
		WillReturnRows(sqlmock.NewRows([]string{
			"pnr_number", "journey_date", "status", "number_of_passengers",
			"train_name", "train_number", "source", "destination",
			"departure_time", "arrival_time", "duration",
		}).AddRow("1234567890", "2026-10-01", "Confirmed", 2,
			"Duronto Express", "12213", "Mumbai", "Delhi", "23:00", "16:00", "17h"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/pnr/1234567890", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "1234567890") {
		t.Fatalf("response missing pnr: %s", w.Body.String())
	}
}

func TestPNRStatusNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("WHERE b.pnr_number = \\?").
		WithArgs("0000000000").
		WillReturnRows(sqlmock.NewRows([]string{"pnr_number"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/pnr/0000000000", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateBookingRejectsEmptyPassengers(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"trainId": 1, "journeyDate": "2026-10-01", "passengers": []}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, 7))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "passenger") {
		t.Fatalf("expected passengers message: %s", w.Body.String())
	}
}

func TestCreateBookingEndToEnd(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"train_id", "train_name", "train_number", "source", "destination",
			"departure_time", "arrival_time", "duration", "class_type",
			"fare", "available_seats", "total_seats",
		}).AddRow(1, "Duronto Express", "12213", "Mumbai", "Delhi", "23:00", "16:00", "17h", "Sleeper", 300.0, 10, 100))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO passengers").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE trains SET available_seats = available_seats - \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"trainId": 1, "journeyDate": "2026-10-01", "passengers": [{"name": "Asha", "age": 30, "gender": "F"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, 7))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Booking successful") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTrainSearchRequiresSourceAndDestination(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trains/search?source=Delhi", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
