package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{"user_id", "username", "password_hash", "created_at"}

// insertUserQuery renders the INSERT for user. Only user_id is returned:
// created_at is supplied by the caller so both dialects scan the same shape.
func (db *DB) insertUserQuery(user models.User, createdAt time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Insert(usersTable).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) selectUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
