package repositories

import (
	"database/sql"

	"railway/internal/domain/models"
)

const trainColumns = `train_id, train_name, train_number, source, destination,
		departure_time, arrival_time, duration, class_type, fare, available_seats, total_seats`

type TrainRepository struct {
	DB *sql.DB
}

func (r TrainRepository) GetByID(id int64) (models.Train, error) {
	row := r.DB.QueryRow(`SELECT `+trainColumns+` FROM trains WHERE train_id = ?`, id)
	return scanTrain(row)
}

func (r TrainRepository) List() ([]models.Train, error) {
	rows, err := r.DB.Query(`SELECT ` + trainColumns + ` FROM trains ORDER BY train_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrains(rows)
}

// Search matches source and destination as case-insensitive substrings
// and optionally filters by class. Results ordered by departure time.
func (r TrainRepository) Search(source, destination, classType string) ([]models.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE source LIKE ? AND destination LIKE ?`
	args := []any{"%" + source + "%", "%" + destination + "%"}

	if classType != "" {
		query += ` AND class_type = ?`
		args = append(args, classType)
	}
	query += ` ORDER BY departure_time`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrains(rows)
}

func (r TrainRepository) Route(trainID int64) ([]models.RouteStop, error) {
	rows, err := r.DB.Query(`
		SELECT tr.train_id, tr.station_id, tr.stop_number, s.station_name, s.station_code, s.city
		FROM train_routes tr
		JOIN stations s ON tr.station_id = s.station_id
		WHERE tr.train_id = ?
		ORDER BY tr.stop_number
	`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := make([]models.RouteStop, 0)
	for rows.Next() {
		var st models.RouteStop
		if err := rows.Scan(&st.TrainID, &st.StationID, &st.StopNumber, &st.StationName, &st.StationCode, &st.City); err != nil {
			return nil, err
		}
		stops = append(stops, st)
	}
	return stops, rows.Err()
}

// ReserveSeats decrements the seat counter only when enough seats
// remain. The condition and the decrement are one statement, so two
// concurrent bookings for the last seats cannot both pass. Returns
// false when the train had fewer than count seats left.
func (r TrainRepository) ReserveSeats(tx *sql.Tx, trainID int64, count int) (bool, error) {
	res, err := tx.Exec(`
		UPDATE trains
		SET available_seats = available_seats - ?
		WHERE train_id = ? AND available_seats >= ?
	`, count, trainID, count)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReleaseSeats returns seats to the counter, clamped at the train's
// total capacity.
func (r TrainRepository) ReleaseSeats(tx *sql.Tx, trainID int64, count int) error {
	_, err := tx.Exec(`
		UPDATE trains
		SET available_seats = LEAST(available_seats + ?, total_seats)
		WHERE train_id = ?
	`, count, trainID)
	return err
}

// AvailableSeats reads the current counter inside the caller's
// transaction, used for accurate error messages after a failed reserve.
func (r TrainRepository) AvailableSeats(tx *sql.Tx, trainID int64) (int, error) {
	var n int
	err := tx.QueryRow(`SELECT available_seats FROM trains WHERE train_id = ?`, trainID).Scan(&n)
	return n, err
}

func scanTrain(row *sql.Row) (models.Train, error) {
	var t models.Train
	err := row.Scan(
		&t.ID, &t.Name, &t.Number, &t.Source, &t.Destination,
		&t.DepartureTime, &t.ArrivalTime, &t.Duration, &t.ClassType,
		&t.Fare, &t.AvailableSeats, &t.TotalSeats,
	)
	return t, err
}

func collectTrains(rows *sql.Rows) ([]models.Train, error) {
	trains := make([]models.Train, 0)
	for rows.Next() {
		var t models.Train
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Number, &t.Source, &t.Destination,
			&t.DepartureTime, &t.ArrivalTime, &t.Duration, &t.ClassType,
			&t.Fare, &t.AvailableSeats, &t.TotalSeats,
		); err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}
	return trains, rows.Err()
}
