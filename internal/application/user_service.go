package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/abdrasaq14/payever-test/internal/domain/entity"
	"github.com/abdrasaq14/payever-test/internal/domain/event"
	repo "github.com/abdrasaq14/payever-test/internal/domain/repository"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
	"github.com/abdrasaq14/payever-test/pkg/helpers"
	"github.com/abdrasaq14/payever-test/pkg/mailer/templates"
)

const userCacheTTL = 5 * time.Minute

// Mailer sends a single email and reports transport failures.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// EventPublisher submits a JSON payload to the message queue, awaiting
// broker acceptance only.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Service orchestrates user creation and retrieval. Creating a user runs
// persist, welcome mail and event publish in that order; any failure stops
// the chain without rolling back earlier steps.
type Service struct {
	Repo        repo.UserRepository
	Mailer      Mailer
	Publisher   EventPublisher
	Redis       *redis.Client
	Logger      *logrus.Logger
	AppName     string
	MailEnabled bool
}

func NewService(r repo.UserRepository, m Mailer, pub EventPublisher, rdb *redis.Client, logger *logrus.Logger, appName string, mailEnabled bool) *Service {
	return &Service{
		Repo:        r,
		Mailer:      m,
		Publisher:   pub,
		Redis:       rdb,
		Logger:      logger,
		AppName:     appName,
		MailEnabled: mailEnabled,
	}
}

type CreateUserInput struct {
	FirstName string
	Email     string
	Avatar    *string
}

func userCacheKey(id string) string {
	return "user:doc:" + id
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{FirstName: in.FirstName, Email: in.Email, Avatar: in.Avatar}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.sendWelcomeEmail(ctx, u); err != nil {
		return nil, apperrors.Wrap(apperrors.Delivery, "failed to send welcome email", err)
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishJSON(ctx, event.NewUserCreated(u)); err != nil {
			return nil, apperrors.Wrap(apperrors.Publish, "failed to publish user created event", err)
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")
	}
	return u, nil
}

// GetUser reads through the redis cache in front of the repository.
func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if s.Redis != nil {
		var cached entity.User
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, userCacheKey(id), &cached); err == nil && hit {
			return &cached, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, userCacheKey(u.ID), u, userCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to cache user")
		}
	}
	return u, nil
}

func (s *Service) sendWelcomeEmail(ctx context.Context, u *entity.User) error {
	if s.Mailer == nil || !s.MailEnabled {
		if s.Logger != nil {
			s.Logger.WithField("email", u.Email).Debug("mail sending disabled, skipping welcome email")
		}
		return nil
	}

	html, err := templates.RenderHTML(templates.Welcome, templates.WelcomeData{FirstName: u.FirstName, AppName: s.AppName})
	if err != nil {
		// fall back to the plain-text body
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("failed to render welcome template")
		}
		html = ""
	}
	return s.Mailer.Send(ctx, u.Email, "Welcome!", "Your account has been created successfully.", html)
}
