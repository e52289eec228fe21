package exercise

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/dateformat"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *RepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) AddExercise(ctx context.Context, userID string, e models.Exercise) error {
	return m.Called(ctx, userID, e).Error(0)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var fixedNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func newTestService(r *RepoMock, c *CacheMock) *Service {
	return New(r, c, sl.Discard(), Options{
		QueryTimeout: time.Second,
		CacheTTL:     time.Minute,
		NewID:        func() string { return "AbCdEf1234" },
		Now:          func() time.Time { return fixedNow },
	})
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		setupMocks func(r *RepoMock)
		wantErr    error
		wantUser   *models.User
	}{
		{
			name:       "empty username",
			username:   "",
			setupMocks: func(*RepoMock) {},
			wantErr:    ErrInvalidUsername,
		},
		{
			name:       "whitespace username",
			username:   "   ",
			setupMocks: func(*RepoMock) {},
			wantErr:    ErrInvalidUsername,
		},
		{
			name:     "username taken",
			username: "alice",
			setupMocks: func(r *RepoMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").
					Return(&models.User{UserID: "x", Username: "alice"}, nil).Once()
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:     "success",
			username: " alice ",
			setupMocks: func(r *RepoMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").Return(nil, storage.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.UserID == "AbCdEf1234" && u.Username == "alice" && u.Count == 0 && len(u.Log) == 0
				})).Return(nil).Once()
			},
			wantUser: &models.User{
				UserID:    "AbCdEf1234",
				Username:  "alice",
				Log:       []models.Exercise{},
				CreatedAt: fixedNow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(RepoMock)
			c := new(CacheMock)
			tt.setupMocks(r)
			s := newTestService(r, c)

			user, err := s.Register(context.Background(), tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				r.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
			}
			r.AssertExpectations(t)
		})
	}
}

func TestService_Register_StorageError(t *testing.T) {
	r := new(RepoMock)
	c := new(CacheMock)
	dbErr := errors.New("db down")
	r.On("GetUserByUsername", mock.Anything, "bob").Return(nil, dbErr).Once()

	_, err := newTestService(r, c).Register(context.Background(), "bob")
	assert.ErrorIs(t, err, dbErr)
	r.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestService_AddExercise(t *testing.T) {
	user := &models.User{UserID: "u1", Username: "alice", Log: []models.Exercise{}}
	long := strings.Repeat("a", 49)

	tests := []struct {
		name        string
		req         models.AddExerciseRequest
		setupMocks  func(r *RepoMock, c *CacheMock)
		wantErr     error
		wantFields  []string
		wantMsgs    []string
		want        *models.AddedExercise
		wantNoWrite bool // запрос отклонён до записи в хранилище
	}{
		{
			name: "unknown user",
			req:  models.AddExerciseRequest{UserID: "nope", Description: "run", Duration: "30"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "nope").Return(nil, storage.ErrNotFound).Once()
			},
			wantErr:     ErrUserNotFound,
			wantNoWrite: true,
		},
		{
			name: "unknown user wins over missing fields",
			req:  models.AddExerciseRequest{UserID: "nope"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "nope").Return(nil, storage.ErrNotFound).Once()
			},
			wantErr:     ErrUserNotFound,
			wantNoWrite: true,
		},
		{
			name: "missing both",
			req:  models.AddExerciseRequest{UserID: "u1"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
			},
			wantFields:  []string{"Description", "Duration"},
			wantNoWrite: true,
		},
		{
			name: "missing duration",
			req:  models.AddExerciseRequest{UserID: "u1", Description: "run"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
			},
			wantFields:  []string{"Duration"},
			wantNoWrite: true,
		},
		{
			name: "all format errors together",
			req:  models.AddExerciseRequest{UserID: "u1", Description: long, Duration: "3O", Date: "not-a-date"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
			},
			wantMsgs: []string{
				"Description is too long",
				"Duration should be number only",
				"Date entry is invalid",
			},
			wantNoWrite: true,
		},
		{
			name: "49 characters rejected",
			req:  models.AddExerciseRequest{UserID: "u1", Description: long, Duration: "30"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
			},
			wantMsgs:    []string{"Description is too long"},
			wantNoWrite: true,
		},
		{
			name: "negative duration rejected",
			req:  models.AddExerciseRequest{UserID: "u1", Description: "run", Duration: "-5"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
			},
			wantMsgs:    []string{"Duration should be number only"},
			wantNoWrite: true,
		},
		{
			name: "48 characters accepted, date defaults to now",
			req:  models.AddExerciseRequest{UserID: "u1", Description: long[:48], Duration: "30"},
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
				r.On("AddExercise", mock.Anything, "u1", models.Exercise{
					Description: long[:48], Duration: "30", Date: fixedNow,
				}).Return(nil).Once()
				c.On("Invalidate", mock.Anything, "user:u1").Return(nil).Once()
			},
			want: &models.AddedExercise{
				Username: "alice", UserID: "u1", Description: long[:48], Duration: "30", Date: fixedNow,
			},
		},
		{
			name: "explicit date, cache error ignored",
			req:  models.AddExerciseRequest{UserID: "u1", Description: "run", Duration: "45", Date: "2024-01-02"},
			setupMocks: func(r *RepoMock, c *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
				r.On("AddExercise", mock.Anything, "u1", mock.Anything).Return(nil).Once()
				c.On("Invalidate", mock.Anything, "user:u1").Return(errors.New("redis down")).Once()
			},
			want: &models.AddedExercise{
				Username: "alice", UserID: "u1", Description: "run", Duration: "45",
				Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "user removed between read and write",
			req:  models.AddExerciseRequest{UserID: "u1", Description: "run", Duration: "45"},
			setupMocks: func(r *RepoMock, _ *CacheMock) {
				r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
				r.On("AddExercise", mock.Anything, "u1", mock.Anything).Return(storage.ErrNotFound).Once()
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(RepoMock)
			c := new(CacheMock)
			tt.setupMocks(r, c)
			s := newTestService(r, c)

			got, err := s.AddExercise(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantFields != nil:
				var mf *MissingFieldError
				require.ErrorAs(t, err, &mf)
				assert.Equal(t, tt.wantFields, mf.Fields)
			case tt.wantMsgs != nil:
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantMsgs, ve.Messages)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			if tt.wantNoWrite {
				r.AssertNotCalled(t, "AddExercise", mock.Anything, mock.Anything, mock.Anything)
				c.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
			}
			r.AssertExpectations(t)
			c.AssertExpectations(t)
		})
	}
}

func TestService_AddExercise_Location(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	r := new(RepoMock)
	c := new(CacheMock)
	r.On("GetUser", mock.Anything, "u1").
		Return(&models.User{UserID: "u1", Username: "alice", Log: []models.Exercise{}}, nil).Once()
	r.On("AddExercise", mock.Anything, "u1", mock.Anything).Return(nil).Once()
	c.On("Invalidate", mock.Anything, "user:u1").Return(nil).Once()

	s := New(r, c, sl.Discard(), Options{Location: loc})
	got, err := s.AddExercise(context.Background(), models.AddExerciseRequest{
		UserID: "u1", Description: "run", Duration: "30", Date: "2024-01-01",
	})
	require.NoError(t, err)
	assert.True(t, time.Date(2024, time.January, 1, 5, 0, 0, 0, time.UTC).Equal(got.Date))
	assert.Equal(t, "Jan 1st 2024 Monday", dateformat.Format(got.Date, loc))
	r.AssertExpectations(t)
	c.AssertExpectations(t)
}

func TestService_Log(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC) }
	user := &models.User{
		UserID:   "u1",
		Username: "alice",
		Count:    3,
		Log: []models.Exercise{
			{Description: "c", Duration: "3", Date: d(3)},
			{Description: "a", Duration: "1", Date: d(1)},
			{Description: "b", Duration: "2", Date: d(2)},
		},
	}

	t.Run("cache miss loads from storage", func(t *testing.T) {
		r := new(RepoMock)
		c := new(CacheMock)
		c.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, nil).Once()
		r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
		c.On("Set", mock.Anything, "user:u1", user, time.Minute).Return(nil).Once()

		got, err := newTestService(r, c).Log(context.Background(), models.LogQuery{UserID: "u1", From: "2024-01-02"})
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		require.Len(t, got.Log, 2)
		assert.Equal(t, "b", got.Log[0].Description)
		assert.Equal(t, "c", got.Log[1].Description)
		r.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		r := new(RepoMock)
		c := new(CacheMock)
		c.On("Get", mock.Anything, "user:u1", mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*models.User) = *user
			}).Return(true, nil).Once()

		got, err := newTestService(r, c).Log(context.Background(), models.LogQuery{UserID: "u1"})
		require.NoError(t, err)
		assert.Len(t, got.Log, 3)
		r.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})

	t.Run("cache error falls back to storage", func(t *testing.T) {
		r := new(RepoMock)
		c := new(CacheMock)
		c.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, errors.New("redis down")).Once()
		r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
		c.On("Set", mock.Anything, "user:u1", user, time.Minute).Return(errors.New("redis down")).Once()

		got, err := newTestService(r, c).Log(context.Background(), models.LogQuery{UserID: "u1", Limit: "1"})
		require.NoError(t, err)
		require.Len(t, got.Log, 1)
		assert.Equal(t, "a", got.Log[0].Description)
	})

	t.Run("unknown user", func(t *testing.T) {
		r := new(RepoMock)
		c := new(CacheMock)
		c.On("Get", mock.Anything, "user:nope", mock.Anything).Return(false, nil).Once()
		r.On("GetUser", mock.Anything, "nope").Return(nil, storage.ErrNotFound).Once()

		got, err := newTestService(r, c).Log(context.Background(), models.LogQuery{UserID: "nope"})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, got)
		c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid from", func(t *testing.T) {
		r := new(RepoMock)
		c := new(CacheMock)
		c.On("Get", mock.Anything, "user:u1", mock.Anything).Return(false, nil).Once()
		r.On("GetUser", mock.Anything, "u1").Return(user, nil).Once()
		c.On("Set", mock.Anything, "user:u1", user, time.Minute).Return(nil).Once()

		_, err := newTestService(r, c).Log(context.Background(), models.LogQuery{UserID: "u1", From: "yesterday"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"From date is invalid"}, ve.Messages)
	})
}

func TestParseLogFilter(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		q        models.LogQuery
		want     models.LogFilter
		wantMsgs []string
	}{
		{name: "empty", q: models.LogQuery{}, want: models.LogFilter{}},
		{name: "from only", q: models.LogQuery{From: "2024-01-01"}, want: models.LogFilter{From: &from}},
		{name: "limit", q: models.LogQuery{Limit: "2"}, want: models.LogFilter{Limit: 2}},
		{name: "non-integer limit ignored", q: models.LogQuery{Limit: "two"}, want: models.LogFilter{}},
		{name: "zero limit ignored", q: models.LogQuery{Limit: "0"}, want: models.LogFilter{}},
		{name: "negative limit ignored", q: models.LogQuery{Limit: "-3"}, want: models.LogFilter{}},
		{
			name:     "both dates invalid",
			q:        models.LogQuery{From: "x", To: "y"},
			wantMsgs: []string{"From date is invalid", "To date is invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogFilter(tt.q, time.UTC)
			if tt.wantMsgs != nil {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantMsgs, ve.Messages)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogFilter_Location(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := ParseLogFilter(models.LogQuery{From: "2024-01-02", To: "2024-01-03"}, loc)
	require.NoError(t, err)
	require.NotNil(t, got.From)
	require.NotNil(t, got.To)
	assert.True(t, time.Date(2024, time.January, 2, 5, 0, 0, 0, time.UTC).Equal(*got.From))
	assert.True(t, time.Date(2024, time.January, 3, 5, 0, 0, 0, time.UTC).Equal(*got.To))
}

func TestFilterLog(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC) }
	ptr := func(t time.Time) *time.Time { return &t }

	entries := []models.Exercise{
		{Description: "e5", Date: d(5)},
		{Description: "e1", Date: d(1)},
		{Description: "e3a", Date: d(3)},
		{Description: "e2", Date: d(2)},
		{Description: "e3b", Date: d(3)},
		{Description: "e4", Date: d(4)},
	}
	descriptions := func(es []models.Exercise) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.Description)
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.LogFilter
		want   []string
	}{
		{
			name: "no filter sorts stably",
			want: []string{"e1", "e2", "e3a", "e3b", "e4", "e5"},
		},
		{
			name:   "from and to are inclusive",
			filter: models.LogFilter{From: ptr(d(2)), To: ptr(d(4))},
			want:   []string{"e2", "e3a", "e3b", "e4"},
		},
		{
			name:   "limit applies after filtering",
			filter: models.LogFilter{From: ptr(d(2)), Limit: 2},
			want:   []string{"e2", "e3a"},
		},
		{
			name:   "limit 2 of 5",
			filter: models.LogFilter{To: ptr(d(4)), Limit: 2},
			want:   []string{"e1", "e2"},
		},
		{
			name:   "empty range",
			filter: models.LogFilter{From: ptr(d(6))},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLog(entries, tt.filter)
			assert.Equal(t, tt.want, descriptions(got))
		})
	}

	assert.Equal(t, "e5", entries[0].Description, "input must not be reordered")
}
