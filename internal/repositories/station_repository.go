package repositories

import (
	"database/sql"

	"railway/internal/domain/models"
)

type StationRepository struct {
	DB *sql.DB
}

func (r StationRepository) List() ([]models.Station, error) {
	rows, err := r.DB.Query(`
		SELECT station_id, station_name, station_code, city
		FROM stations
		ORDER BY station_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStations(rows)
}

// Search matches name, code or city as a substring, capped at 20 rows.
func (r StationRepository) Search(query string) ([]models.Station, error) {
	q := "%" + query + "%"
	rows, err := r.DB.Query(`
		SELECT station_id, station_name, station_code, city
		FROM stations
		WHERE station_name LIKE ? OR station_code LIKE ? OR city LIKE ?
		ORDER BY station_name
		LIMIT 20
	`, q, q, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStations(rows)
}

func collectStations(rows *sql.Rows) ([]models.Station, error) {
	out := make([]models.Station, 0)
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.City); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
