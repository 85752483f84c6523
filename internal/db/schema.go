package db

import "database/sql"

// EnsureSchema creates the tables this service writes to when they do
// not exist yet. Reference data (stations, trains, routes) is seeded
// by an administrative process; the DDL here only guarantees shape.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			contact_number VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS stations (
			station_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			station_name VARCHAR(255) NOT NULL,
			station_code VARCHAR(20) NOT NULL,
			city VARCHAR(255) NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS trains (
			train_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			train_name VARCHAR(255) NOT NULL,
			train_number VARCHAR(20) NOT NULL,
			source VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			departure_time VARCHAR(20) NOT NULL,
			arrival_time VARCHAR(20) NOT NULL,
			duration VARCHAR(20) NOT NULL,
			class_type VARCHAR(50) NOT NULL,
			fare DECIMAL(10,2) NOT NULL,
			available_seats INT NOT NULL,
			total_seats INT NOT NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS train_routes (
			route_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			train_id BIGINT NOT NULL,
			station_id BIGINT NOT NULL,
			stop_number INT NOT NULL,
			KEY idx_train (train_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			train_id BIGINT NOT NULL,
			pnr_number VARCHAR(20) NOT NULL,
			journey_date DATE NOT NULL,
			number_of_passengers INT NOT NULL,
			total_fare DECIMAL(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Confirmed',
			booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_pnr (pnr_number),
			KEY idx_user (user_id),
			KEY idx_train (train_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS passengers (
			passenger_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			age INT NOT NULL,
			gender VARCHAR(20) NOT NULL,
			seat_number VARCHAR(20) NULL,
			KEY idx_booking (booking_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
