package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// CreateUser сохраняет нового пользователя с пустым журналом.
// Перед записью структура проверяется валидатором; ошибки валидации
// возвращаются как validator.ValidationErrors.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := s.validate.Struct(user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := s.rebind(`INSERT INTO users (user_id, username, exercise_count, created_at)
			  VALUES (?, ?, ?, ?)`)
	if _, err := s.DB.ExecContext(ctx, query,
		user.UserID, user.Username, user.Count, user.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByUsername возвращает пользователя по имени без журнала.
// Если пользователей с таким именем несколько, возвращается самый ранний.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := s.rebind(`SELECT user_id, username, exercise_count, created_at
			  FROM users
			  WHERE username = ?
			  ORDER BY created_at
			  LIMIT 1`)
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его идентификатору вместе с журналом
// в порядке добавления записей.
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := s.rebind(`SELECT user_id, username, exercise_count, created_at
			  FROM users
			  WHERE user_id = ?`)
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.Log, err = s.listExercises(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Count, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.Log = []models.Exercise{}
	return &u, nil
}
