package services

import (
	"strconv"
	"testing"
	"time"

	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
	"railway/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: conn},
		Trains:   repositories.TrainRepository{DB: conn},
		DB:       conn,
	}
	return svc, mock
}

func trainRow(fare float64, available, total int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"train_id", "train_name", "train_number", "source", "destination",
		"departure_time", "arrival_time", "duration", "class_type",
		"fare", "available_seats", "total_seats",
	}).AddRow(1, "Duronto Express", "12213", "Mumbai", "Delhi", "23:00", "16:00", "17h", "Sleeper",
		fare, available, total)
}

func passengerList(n int) []models.PassengerInput {
	out := make([]models.PassengerInput, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.PassengerInput{
			Name:   "Passenger " + strconv.Itoa(i+1),
			Age:    20 + i,
			Gender: "M",
		})
	}
	return out
}

func futureDate(days int) string {
	return utils.FormatDate(time.Now().AddDate(0, 0, days))
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(trainRow(300, 10, 100))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	for i := 0; i < 3; i++ {
		mock.ExpectExec("INSERT INTO passengers").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectExec("UPDATE trains SET available_seats = available_seats - \\?").
		WithArgs(3, int64(1), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := svc.Create(7, CreateBookingInput{
		TrainID:     1,
		JourneyDate: futureDate(10),
		Passengers:  passengerList(3),
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if out.BookingID != 42 {
		t.Fatalf("unexpected booking id: %d", out.BookingID)
	}
	if out.TotalFare != 900 {
		t.Fatalf("fare snapshot wrong: got %.2f want 900", out.TotalFare)
	}
	if out.Status != models.StatusConfirmed {
		t.Fatalf("unexpected status: %s", out.Status)
	}
	if out.PassengerCount != 3 {
		t.Fatalf("unexpected passenger count: %d", out.PassengerCount)
	}
	if len(out.PNRNumber) != 10 {
		t.Fatalf("expected 10-digit PNR, got %q", out.PNRNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingInsufficientSeatsPreCheck(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(trainRow(500, 1, 100))

	_, err := svc.Create(7, CreateBookingInput{
		TrainID:     1,
		JourneyDate: futureDate(5),
		Passengers:  passengerList(2),
	})
	if !domain.IsInsufficientSeats(err) {
		t.Fatalf("expected insufficient seats, got %v", err)
	}
	if err.Error() != "only 1 seats available for this train" {
		t.Fatalf("message should report remaining count: %q", err.Error())
	}
	if merr := mock.ExpectationsWereMet(); merr != nil {
		t.Fatalf("no transaction should have started: %v", merr)
	}
}

func TestCreateBookingLosesRaceOnConditionalDecrement(t *testing.T) {
	// Pre-check sees two seats, but a concurrent booking takes them
	// before the conditional decrement runs. The whole unit rolls
	// back: no booking row, no passenger rows, counter untouched.
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(trainRow(500, 2, 100))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE trains SET available_seats = available_seats - \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT available_seats FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"available_seats"}).AddRow(0))
	mock.ExpectRollback()

	_, err := svc.Create(7, CreateBookingInput{
		TrainID:     1,
		JourneyDate: futureDate(5),
		Passengers:  passengerList(2),
	})
	if !domain.IsInsufficientSeats(err) {
		t.Fatalf("expected insufficient seats, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRollsBackWhenPassengerInsertFails(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(trainRow(300, 10, 100))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnError(&mysql.MySQLError{Number: 1146, Message: "table gone"})
	mock.ExpectRollback()

	_, err := svc.Create(7, CreateBookingInput{
		TrainID:     1,
		JourneyDate: futureDate(5),
		Passengers:  passengerList(1),
	})
	if !domain.IsUnavailable(err) {
		t.Fatalf("storage failure should surface as unavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRetriesOnDuplicatePNR(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("SELECT (.+) FROM trains WHERE train_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(trainRow(300, 10, 100))

	// First attempt collides on the pnr unique index.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate pnr"})
	mock.ExpectRollback()

	// Second attempt with a fresh PNR goes through.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(43, 1))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE trains SET available_seats = available_seats - \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := svc.Create(7, CreateBookingInput{
		TrainID:     1,
		JourneyDate: futureDate(5),
		Passengers:  passengerList(1),
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if out.BookingID != 43 {
		t.Fatalf("unexpected booking id: %d", out.BookingID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newBookingService(t)

	cases := []struct {
		name string
		in   CreateBookingInput
	}{
		{"missing train", CreateBookingInput{JourneyDate: futureDate(1), Passengers: passengerList(1)}},
		{"bad date", CreateBookingInput{TrainID: 1, JourneyDate: "soon", Passengers: passengerList(1)}},
		{"no passengers", CreateBookingInput{TrainID: 1, JourneyDate: futureDate(1)}},
		{"too many passengers", CreateBookingInput{TrainID: 1, JourneyDate: futureDate(1), Passengers: passengerList(7)}},
		{"bad age", CreateBookingInput{TrainID: 1, JourneyDate: futureDate(1), Passengers: []models.PassengerInput{{Name: "A", Age: 130, Gender: "F"}}}},
		{"missing name", CreateBookingInput{TrainID: 1, JourneyDate: futureDate(1), Passengers: []models.PassengerInput{{Age: 30, Gender: "F"}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(7, tc.in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func cancelBookingRow(status, journeyDate string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"booking_id", "user_id", "train_id", "pnr_number",
		"journey_date", "number_of_passengers", "total_fare",
		"status", "booking_date",
		"train_name", "train_number", "source", "destination",
		"departure_time", "arrival_time", "duration",
	}).AddRow(10, 7, 1, "1234567890", journeyDate, 2, 1000.0, status, "2026-08-01 09:00:00",
		"Duronto Express", "12213", "Mumbai", "Delhi", "23:00", "16:00", "17h")
}

func TestCancelBookingSuccess(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("WHERE b.booking_id = \\? AND b.user_id = \\?").
		WithArgs(int64(10), int64(7)).
		WillReturnRows(cancelBookingRow(models.StatusConfirmed, futureDate(1)))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status = \\?").
		WithArgs(models.StatusCancelled, int64(10), models.StatusCancelled).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET available_seats = LEAST\\(available_seats \\+ \\?, total_seats\\)").
		WithArgs(2, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Cancel(7, 10); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery("WHERE b.booking_id = \\? AND b.user_id = \\?").
		WithArgs(int64(10), int64(7)).
		WillReturnRows(cancelBookingRow(models.StatusCancelled, futureDate(1)))

	err := svc.Cancel(7, 10)
	if !domain.IsAlreadyCancelled(err) {
		t.Fatalf("expected already cancelled, got %v", err)
	}
	// No transaction, no seat release.
	if merr := mock.ExpectationsWereMet(); merr != nil {
		t.Fatalf("unexpected writes: %v", merr)
	}
}

func TestCancelBookingConcurrentCancelDoesNotDoubleRelease(t *testing.T) {
	// Status reads Confirmed, but another request cancels between the
	// read and the conditional flip. The flip matches no row, so the
	// unit aborts before any seat release.
	svc, mock := newBookingService(t)

	mock.ExpectQuery("WHERE b.booking_id = \\? AND b.user_id = \\?").
		WithArgs(int64(10), int64(7)).
		WillReturnRows(cancelBookingRow(models.StatusConfirmed, futureDate(1)))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Cancel(7, 10)
	if !domain.IsAlreadyCancelled(err) {
		t.Fatalf("expected already cancelled, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingPastJourney(t *testing.T) {
	svc, mock := newBookingService(t)

	yesterday := utils.FormatDate(time.Now().AddDate(0, 0, -1))
	mock.ExpectQuery("WHERE b.booking_id = \\? AND b.user_id = \\?").
		WithArgs(int64(10), int64(7)).
		WillReturnRows(cancelBookingRow(models.StatusConfirmed, yesterday))

	err := svc.Cancel(7, 10)
	if !domain.IsPastJourney(err) {
		t.Fatalf("expected past journey, got %v", err)
	}
	if merr := mock.ExpectationsWereMet(); merr != nil {
		t.Fatalf("inventory must stay unchanged: %v", merr)
	}
}

func TestCancelBookingNotOwned(t *testing.T) {
	svc, mock := newBookingService(t)

	// The ownership filter excludes the row entirely; a foreign
	// booking id is indistinguishable from a missing one.
	mock.ExpectQuery("WHERE b.booking_id = \\? AND b.user_id = \\?").
		WithArgs(int64(10), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

	err := svc.Cancel(8, 10)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for non-owner, got %v", err)
	}
}

func TestPNRStatusRequiresCode(t *testing.T) {
	svc, _ := newBookingService(t)

	if _, err := svc.PNRStatus("  "); !domain.IsValidation(err) {
		t.Fatal("blank pnr should fail validation")
	}
}
