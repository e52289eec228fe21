package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// AddExercise в одной транзакции увеличивает счётчик пользователя на единицу
// и добавляет запись в его журнал. Возвращает ErrNotFound, если пользователя нет.
func (s *Storage) AddExercise(ctx context.Context, userID string, e models.Exercise) error {
	const op = "storage.AddExercise"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := s.validate.Struct(e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, s.rebind(`UPDATE users
			  SET exercise_count = exercise_count + 1
			  WHERE user_id = ?`), userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO exercises (user_id, description, duration, date)
			  VALUES (?, ?, ?, ?)`),
		userID, e.Description, e.Duration, e.Date.UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}

func (s *Storage) listExercises(ctx context.Context, userID string) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx, s.rebind(`SELECT description, duration, date
			  FROM exercises
			  WHERE user_id = ?
			  ORDER BY id`), userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return nil, err
		}
		e.Date = e.Date.UTC()
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

