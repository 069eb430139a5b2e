package handlers

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/abdrasaq14/payever-test/internal/application"
	"github.com/abdrasaq14/payever-test/internal/domain/entity"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
	"github.com/abdrasaq14/payever-test/pkg/validation"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*entity.User)}
}

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.New(apperrors.Validation, "email already exists")
		}
	}
	u.ID = uuid.NewString()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.NotFound, "user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) UpdateAvatar(_ context.Context, id string, filename *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	u.Avatar = filename
	u.UpdatedAt = time.Now().UTC()
	return nil
}

type stubMailer struct {
	err error
}

func (m *stubMailer) Send(context.Context, string, string, string, string) error { return m.err }

type stubPublisher struct {
	err error
}

func (p *stubPublisher) PublishJSON(context.Context, any) error { return p.err }

type testEnv struct {
	router *gin.Engine
	repo   *memRepo
}

// newTestEnv builds a router with the full user route set backed by
// in-memory dependencies and a throwaway avatar directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newMemRepo()
	svc := userapp.NewService(repo, &stubMailer{}, &stubPublisher{}, nil, logger, "test-app", true)
	avatars := userapp.NewAvatarStore(t.TempDir(), repo, nil, logger)
	h := NewUserHandler(svc, avatars, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Create)
	api.GET("/user/:userId", h.Get)
	api.POST("/user/:userId/avatar", h.UploadAvatar)
	api.GET("/user/:userId/avatar", h.GetAvatar)
	api.DELETE("/user/:userId/avatar", h.DeleteAvatar)

	return &testEnv{router: r, repo: repo}
}
