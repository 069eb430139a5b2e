package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abdrasaq14/payever-test/internal/domain/entity"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// memRepo is an in-memory UserRepository with the same error kinds as the
// postgres implementation.
type memRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*entity.User)}
}

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
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

type sentMail struct {
	to, subject, text, html string
}

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []sentMail
}

func (m *fakeMailer) Send(_ context.Context, to, subject, text, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, text: text, html: html})
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	err       error
	published []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}
