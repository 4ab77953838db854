package store

import (
	"database/sql"
	"errors"

	"github.com/samber/mo"
)

// RegisterUser inserts a new user unless the username is already taken,
// in which case ErrAlreadyExists is returned and nothing is inserted.
// Role is stored as supplied; it is not validated against an enum.
func (s *SQLStore) RegisterUser(username, password, role string) (int64, error) {
	var existing int64
	err := s.DB.QueryRow(`SELECT id FROM users WHERE username=$1`, username).Scan(&existing)
	switch {
	case err == nil:
		return 0, ErrAlreadyExists
	case !errors.Is(err, sql.ErrNoRows):
		return 0, err
	}
	var id int64
	err = s.DB.QueryRow(
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`,
		username, password, role,
	).Scan(&id)
	return id, err
}

// Authenticate reports whether a user row matches the exact
// (username, password, role) triple. Comparison is case-sensitive
// plaintext.
func (s *SQLStore) Authenticate(username, password, role string) (bool, error) {
	var id int64
	err := s.DB.QueryRow(
		`SELECT id FROM users WHERE username=$1 AND password=$2 AND role=$3`,
		username, password, role,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLStore) ListUsers() ([]UserRow, error) {
	rows, err := s.DB.Query(`SELECT id, username, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []UserRow{}
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// DeleteUser removes the row with the given id. Deleting an unknown id is
// a no-op; no other table is touched.
func (s *SQLStore) DeleteUser(userID int64) error {
	_, err := s.DB.Exec(`DELETE FROM users WHERE id=$1`, userID)
	return err
}

// UpdateUser applies a partial update; an absent option keeps the current
// value.
func (s *SQLStore) UpdateUser(userID int64, username, password, role mo.Option[string]) error {
	var current UserRow
	err := s.DB.QueryRow(`SELECT id, username, password, role FROM users WHERE id=$1`, userID).
		Scan(&current.ID, &current.Username, &current.Password, &current.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(
		`UPDATE users SET username=$1, password=$2, role=$3 WHERE id=$4`,
		username.OrElse(current.Username),
		password.OrElse(current.Password),
		role.OrElse(current.Role),
		userID,
	)
	return err
}

// UserIDByName returns the id of the first user with the given username.
func (s *SQLStore) UserIDByName(username string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(`SELECT id FROM users WHERE username=$1 ORDER BY id LIMIT 1`, username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return id, err
}
