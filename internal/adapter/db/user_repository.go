package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

const userColumns = `id, name, email, password, role, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *UserRepository) Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	q := ext(ctx, r.db)

	res, err := q.ExecContext(ctx,
		"INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
		in.Name, in.Email, in.PasswordHash, string(in.Role),
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.getByID(ctx, q, uint64(id))
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getByID(ctx, ext(ctx, r.db), id)
}

func (r *UserRepository) getByID(ctx context.Context, q sqlx.ExtContext, id uint64) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, "SELECT "+userColumns+" FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint64, in domain.UpdateUserInput) (domain.User, error) {
	q := ext(ctx, r.db)

	_, err := q.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, role = ?, updated_at = NOW(3) WHERE id = ?",
		in.Name, in.Email, string(in.Role), id,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}
	return r.getByID(ctx, q, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	res, err := ext(ctx, r.db).ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	var taken bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &taken,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = ? AND id <> ?)",
		email, excludeID,
	)
	return taken, err
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

func mapUserRow(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.Password,
		Role:         domain.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
