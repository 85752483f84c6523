package repositories

import (
	"database/sql"

	"railway/internal/domain/models"
)

const bookingJoinColumns = `
	b.booking_id, b.user_id, b.train_id, b.pnr_number,
	DATE_FORMAT(b.journey_date, '%Y-%m-%d'), b.number_of_passengers, b.total_fare,
	b.status, b.booking_date,
	t.train_name, t.train_number, t.source, t.destination,
	t.departure_time, t.arrival_time, t.duration`

type BookingRepository struct {
	DB *sql.DB
}

// InsertBooking writes the booking row inside the caller's
// transaction and returns the generated id.
func (r BookingRepository) InsertBooking(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings (user_id, train_id, pnr_number, journey_date, number_of_passengers, total_fare, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.UserID, b.TrainID, b.PNRNumber, b.JourneyDate, b.Passengers, b.TotalFare, b.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) InsertPassengers(tx *sql.Tx, bookingID int64, passengers []models.PassengerInput) error {
	for _, p := range passengers {
		var seat any
		if p.SeatNumber != "" {
			seat = p.SeatNumber
		}
		if _, err := tx.Exec(`
			INSERT INTO passengers (booking_id, name, age, gender, seat_number)
			VALUES (?, ?, ?, ?, ?)
		`, bookingID, p.Name, p.Age, p.Gender, seat); err != nil {
			return err
		}
	}
	return nil
}

// GetByUser lists a user's bookings newest first, joined with train
// descriptive fields. Passenger rows are fetched separately.
func (r BookingRepository) GetByUser(userID int64) ([]models.BookingSummary, error) {
	rows, err := r.DB.Query(`
		SELECT `+bookingJoinColumns+`
		FROM bookings b
		JOIN trains t ON b.train_id = t.train_id
		WHERE b.user_id = ?
		ORDER BY b.booking_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BookingSummary, 0)
	for rows.Next() {
		var s models.BookingSummary
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.TrainID, &s.PNRNumber,
			&s.JourneyDate, &s.Passengers, &s.TotalFare,
			&s.Status, &s.BookingDate,
			&s.TrainName, &s.TrainNumber, &s.Source, &s.Destination,
			&s.DepartureTime, &s.ArrivalTime, &s.Duration,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByIDForUser fetches one booking scoped to its owner. A booking id
// held by another user scans as sql.ErrNoRows, indistinguishable from
// a missing booking.
func (r BookingRepository) GetByIDForUser(bookingID, userID int64) (models.BookingSummary, error) {
	var s models.BookingSummary
	err := r.DB.QueryRow(`
		SELECT `+bookingJoinColumns+`
		FROM bookings b
		JOIN trains t ON b.train_id = t.train_id
		WHERE b.booking_id = ? AND b.user_id = ?
	`, bookingID, userID).Scan(
		&s.ID, &s.UserID, &s.TrainID, &s.PNRNumber,
		&s.JourneyDate, &s.Passengers, &s.TotalFare,
		&s.Status, &s.BookingDate,
		&s.TrainName, &s.TrainNumber, &s.Source, &s.Destination,
		&s.DepartureTime, &s.ArrivalTime, &s.Duration,
	)
	return s, err
}

func (r BookingRepository) ListPassengers(bookingID int64) ([]models.Passenger, error) {
	rows, err := r.DB.Query(`
		SELECT passenger_id, booking_id, name, age, gender, COALESCE(seat_number, '')
		FROM passengers
		WHERE booking_id = ?
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Passenger, 0)
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.Gender, &p.SeatNumber); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByPNR is the public lookup. The PNR is the capability; no
// ownership filter applies and no owner fields are selected.
func (r BookingRepository) GetByPNR(pnr string) (models.PNRStatus, error) {
	var s models.PNRStatus
	err := r.DB.QueryRow(`
		SELECT b.pnr_number, DATE_FORMAT(b.journey_date, '%Y-%m-%d'), b.status, b.number_of_passengers,
		       t.train_name, t.train_number, t.source, t.destination,
		       t.departure_time, t.arrival_time, t.duration
		FROM bookings b
		JOIN trains t ON b.train_id = t.train_id
		WHERE b.pnr_number = ?
	`, pnr).Scan(
		&s.PNRNumber, &s.JourneyDate, &s.Status, &s.Passengers,
		&s.TrainName, &s.TrainNumber, &s.Source, &s.Destination,
		&s.DepartureTime, &s.ArrivalTime, &s.Duration,
	)
	return s, err
}

// SetCancelled flips status inside the caller's transaction, but only
// when the booking is not cancelled yet. Returns false when another
// request got there first, so inventory is never released twice.
func (r BookingRepository) SetCancelled(tx *sql.Tx, bookingID int64) (bool, error) {
	res, err := tx.Exec(`
		UPDATE bookings SET status = ? WHERE booking_id = ? AND status <> ?
	`, models.StatusCancelled, bookingID, models.StatusCancelled)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
