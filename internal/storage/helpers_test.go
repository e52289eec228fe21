package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/exercise-tracker/internal/migrations"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// setupSQLite создаёт хранилище на временном файле sqlite с применённой схемой.
func setupSQLite(t *testing.T) *Storage {
	t.Helper()

	s, err := New(DriverSQLite, filepath.Join(t.TempDir(), "nested", "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, migrations.Run(s.DB, DriverSQLite))
	return s
}

// setupPostgres поднимает PostgreSQL в контейнере. Пропускается в режиме -short.
func setupPostgres(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in -short mode")
	}
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	var s *Storage
	for i := 0; i < 10; i++ {
		s, err = New(DriverPostgres, dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, migrations.Run(s.DB, DriverPostgres))
	return s
}

// createUser создаёт тестового пользователя.
func createUser(t *testing.T, s *Storage, userID, username string) {
	t.Helper()
	require.NoError(t, s.CreateUser(context.Background(), models.User{
		UserID:   userID,
		Username: username,
	}))
}

// verifyCountInvariant проверяет, что счётчик пользователя равен числу записей.
func verifyCountInvariant(t *testing.T, s *Storage, userID string) {
	t.Helper()
	u, err := s.GetUser(context.Background(), userID)
	require.NoError(t, err)
	n := countExercises(t, s, userID)
	require.Equal(t, n, u.Count)
	require.Len(t, u.Log, n)
}

// countExercises возвращает фактическое число записей в журнале пользователя.
func countExercises(t *testing.T, s *Storage, userID string) int {
	t.Helper()
	var n int
	err := s.DB.QueryRowContext(context.Background(),
		s.rebind(`SELECT COUNT(*) FROM exercises WHERE user_id = ?`), userID).Scan(&n)
	require.NoError(t, err)
	return n
}
