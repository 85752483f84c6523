package repositories

import (
	"database/sql"

	"railway/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(name, email, passwordHash, contactNumber string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, email, password, contact_number)
		VALUES (?, ?, ?, ?)
	`, name, email, passwordHash, contactNumber)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetCredentials returns the profile plus the stored hash for login.
// The hash never leaves this call path.
func (r UserRepository) GetCredentials(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT user_id, name, email, contact_number, password
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.ContactNumber, &hash)
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT user_id, name, email, contact_number, created_at
		FROM users
		WHERE user_id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.ContactNumber, &u.CreatedAt)
	return u, err
}
