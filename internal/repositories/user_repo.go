package repositories

import (
	"database/sql"

	intconfig "dispatchledger/internal/config"
	"dispatchledger/internal/domain"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail loads a user plus their password hash for login checks.
func (r UserRepository) GetByEmail(email string) (domain.User, string, error) {
	var (
		u    domain.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, email, password_hash,
		       COALESCE(first_name,''), COALESCE(middle_name,''), COALESCE(last_name,''),
		       COALESCE(role,'encoder')
		FROM users WHERE email=? LIMIT 1
	`, email).Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.MiddleName, &u.LastName, &u.Role)
	if err != nil {
		return domain.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (domain.User, error) {
	var u domain.User
	err := r.db().QueryRow(`
		SELECT id, email,
		       COALESCE(first_name,''), COALESCE(middle_name,''), COALESCE(last_name,''),
		       COALESCE(role,'encoder')
		FROM users WHERE id=? LIMIT 1
	`, id).Scan(&u.ID, &u.Email, &u.FirstName, &u.MiddleName, &u.LastName, &u.Role)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// EmailExists is checked before insert so a duplicate registration never
// touches the existing row.
func (r UserRepository) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(u domain.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (email, password_hash, first_name, middle_name, last_name, role)
		VALUES (?,?,?,?,?,?)
	`, u.Email, passwordHash, u.FirstName, u.MiddleName, u.LastName, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
