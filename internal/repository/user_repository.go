package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/user-admin-panel/internal/model"
)

// UserStore is the persistence contract for user records. The MySQL
// implementation below is used in production; an in-memory implementation
// backs the tests. All operations are single-record and atomic; there are
// no multi-record transactions, so concurrent updates on the same id are
// last-write-wins.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,username,password_hash,role,full_name,phone,email,created_at,updated_at"

// Create inserts a new user row. The caller assigns the id and password
// hash before calling.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash, role, full_name, phone, email) VALUES (?,?,?,?,?,?,?)",
		u.ID, u.Username, u.PasswordHash, u.Role, u.FullName, u.Phone, u.Email)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getWhere(ctx, "id=?", id)
}

// GetByUsername fetches a user by its login name.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getWhere(ctx, "username=?", username)
}

func (r *UserRepo) getWhere(ctx context.Context, cond string, arg any) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+cond+" LIMIT 1", arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.Phone, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// List returns all users in creation order.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.Phone, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update overwrites the mutable columns of an existing row. The id itself
// never changes.
func (r *UserRepo) Update(ctx context.Context, u model.User) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET username=?, password_hash=?, role=?, full_name=?, phone=?, email=? WHERE id=?",
		u.Username, u.PasswordHash, u.Role, u.FullName, u.Phone, u.Email, u.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrUsernameExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user row permanently.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicateKey detects MySQL error 1062 (duplicate entry for a unique key).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
