package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/repository/gormstore"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id string) (*model.AdminAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, params model.CreateAdminAccountParams) (*model.AdminAccount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminAccount), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) FindValid(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubscriberRepo struct {
	mock.Mock
}

func (m *mockSubscriberRepo) List(ctx context.Context, activeOnly bool) ([]model.EmailSubscriber, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmailSubscriber), args.Error(1)
}

func (m *mockSubscriberRepo) Upsert(ctx context.Context, params model.UpsertSubscriberParams) (*model.EmailSubscriber, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmailSubscriber), args.Error(1)
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// cookieJar stands in for an incoming request's cookies.
type cookieJar map[string]*http.Cookie

func (j cookieJar) Cookie(name string) (*http.Cookie, error) {
	if c, ok := j[name]; ok {
		return c, nil
	}
	return nil, http.ErrNoCookie
}

func jarWith(c *http.Cookie) cookieJar {
	return cookieJar{c.Name: c}
}

func newTestStore(t *testing.T) *gormstore.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gormstore.OpenSQLite(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	store := gormstore.New(db)
	require.NoError(t, store.AutoMigrate())
	t.Cleanup(func() { store.Close() })
	return store
}

func adminContext() context.Context {
	return WithPrincipal(context.Background(), &model.Principal{ID: "admin-id", Email: "admin@example.com"})
}
