// Package exercise содержит бизнес-логику трекера упражнений:
// регистрацию пользователей, добавление записей и выборку журнала.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"golang.org/x/sync/singleflight"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/dateformat"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/keylock"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/shortid"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/metrics"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage"
)

// Repository определяет методы хранилища, которые нужны сервису.
type Repository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя вместе с журналом или storage.ErrNotFound.
	GetUser(ctx context.Context, userID string) (*models.User, error)
	// AddExercise атомарно добавляет запись и увеличивает счётчик.
	AddExercise(ctx context.Context, userID string, e models.Exercise) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Options содержит необязательные параметры сервиса.
type Options struct {
	QueryTimeout time.Duration // Ограничение на каждый вызов хранилища, 0 отключает ограничение
	CacheTTL     time.Duration
	NewID        func() string
	Now          func() time.Time
	Location     *time.Location // Часовой пояс для разбора дат без зоны, по умолчанию UTC
}

// Service реализует операции трекера.
type Service struct {
	repo     Repository
	cache    Cache
	log      *slog.Logger
	validate *validator.Validate

	usernames *keylock.Locker
	users     *keylock.Locker
	group     singleflight.Group

	queryTimeout time.Duration
	cacheTTL     time.Duration
	newID        func() string
	now          func() time.Time
	loc          *time.Location
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger, opts Options) *Service {
	s := &Service{
		repo:         repo,
		cache:        cache,
		log:          log,
		validate:     newValidator(),
		usernames:    keylock.New(),
		users:        keylock.New(),
		queryTimeout: opts.QueryTimeout,
		cacheTTL:     opts.CacheTTL,
		newID:        opts.NewID,
		now:          opts.Now,
		loc:          opts.Location,
	}
	if s.newID == nil {
		s.newID = shortid.New
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = 10 * time.Minute
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func cacheKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

// Register создает пользователя с пустым журналом.
// Имя проверяется на уникальность под блокировкой по имени.
func (s *Service) Register(ctx context.Context, username string) (*models.User, error) {
	const op = "services.exercise.Register"
	log := s.log.With(sl.Op(op))

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	unlock := s.usernames.Lock(username)
	defer unlock()

	qctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.repo.GetUserByUsername(qctx, username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		UserID:    s.newID(),
		Username:  username,
		Count:     0,
		Log:       []models.Exercise{},
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateUser(qctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.UsersRegistered.Inc()
	log.Info("user registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AddExercise добавляет запись в журнал пользователя.
// Проверки идут по порядку: пользователь, обязательные поля, формат полей.
func (s *Service) AddExercise(ctx context.Context, req models.AddExerciseRequest) (*models.AddedExercise, error) {
	const op = "services.exercise.AddExercise"
	log := s.log.With(sl.Op(op), slog.String("user_id", req.UserID))

	unlock := s.users.Lock(req.UserID)
	defer unlock()

	qctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.lookupUser(qctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if fields := missingFields(req); len(fields) > 0 {
		return nil, &MissingFieldError{Fields: fields}
	}
	if err := s.validateAdd(req); err != nil {
		return nil, err
	}

	date := s.now()
	if req.Date != "" {
		date, err = dateformat.Parse(req.Date, s.loc)
		if err != nil {
			return nil, &ValidationError{Messages: []string{fieldMessages["Date"]}}
		}
	}

	entry := models.Exercise{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        date,
	}
	if err := s.repo.AddExercise(qctx, user.UserID, entry); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Invalidate(ctx, cacheKey(user.UserID)); err != nil {
		log.Warn("failed to invalidate cache", sl.Err(err))
	}
	metrics.ExercisesAdded.Inc()
	log.Debug("exercise added")

	return &models.AddedExercise{
		Username:    user.Username,
		UserID:      user.UserID,
		Description: entry.Description,
		Duration:    entry.Duration,
		Date:        entry.Date,
	}, nil
}

// Log возвращает журнал пользователя, отсортированный по дате и отфильтрованный по q.
func (s *Service) Log(ctx context.Context, q models.LogQuery) (*models.UserLog, error) {
	user, err := s.userWithLog(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	filter, err := ParseLogFilter(q, s.loc)
	if err != nil {
		return nil, err
	}

	return &models.UserLog{
		Username: user.Username,
		UserID:   user.UserID,
		Log:      FilterLog(user.Log, filter),
	}, nil
}

// userWithLog читает пользователя из кэша, а при промахе из хранилища.
// Одновременные промахи по одному userID сливаются в один запрос.
func (s *Service) userWithLog(ctx context.Context, userID string) (*models.User, error) {
	const op = "services.exercise.userWithLog"
	log := s.log.With(sl.Op(op), slog.String("user_id", userID))

	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey(userID), &cached)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn("failed to read cache", sl.Err(err))
	case found:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return &cached, nil
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	v, err, _ := s.group.Do(userID, func() (any, error) {
		// Чтение и запись в кэш под той же блокировкой, что и добавление,
		// иначе в кэш может попасть журнал без последней записи.
		unlock := s.users.Lock(userID)
		defer unlock()

		qctx, cancel := s.withTimeout(context.WithoutCancel(ctx))
		defer cancel()

		user, err := s.lookupUser(qctx, userID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(qctx, cacheKey(userID), user, s.cacheTTL); err != nil {
			log.Warn("failed to add to cache", sl.Err(err))
		}
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.User), nil
}

func (s *Service) lookupUser(ctx context.Context, userID string) (*models.User, error) {
	const op = "services.exercise.lookupUser"
	user, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// ParseLogFilter разбирает параметры выборки. Даты без зоны читаются в loc.
// Пустые значения не ограничивают выборку, нечисловой limit игнорируется.
func ParseLogFilter(q models.LogQuery, loc *time.Location) (models.LogFilter, error) {
	var (
		filter   models.LogFilter
		messages []string
	)
	if q.From != "" {
		from, err := dateformat.Parse(q.From, loc)
		if err != nil {
			messages = append(messages, "From date is invalid")
		} else {
			filter.From = &from
		}
	}
	if q.To != "" {
		to, err := dateformat.Parse(q.To, loc)
		if err != nil {
			messages = append(messages, "To date is invalid")
		} else {
			filter.To = &to
		}
	}
	if len(messages) > 0 {
		return models.LogFilter{}, &ValidationError{Messages: messages}
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(q.Limit)); err == nil && limit > 0 {
		filter.Limit = limit
	}
	return filter, nil
}

// FilterLog сортирует копию журнала по дате (при равных датах сохраняется
// порядок добавления) и применяет границы from/to включительно и limit.
func FilterLog(entries []models.Exercise, f models.LogFilter) []models.Exercise {
	sorted := make([]models.Exercise, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make([]models.Exercise, 0, len(sorted))
	for _, e := range sorted {
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}
