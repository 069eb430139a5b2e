package application

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/abdrasaq14/payever-test/internal/domain/repository"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
	"github.com/abdrasaq14/payever-test/pkg/helpers"
)

// AvatarStore persists profile images on disk under content-addressed names.
// Files live at <dir>/<userID>/<sha256>.png: the filename is a pure function
// of the bytes, and the per-user directory keeps one user's delete from
// unlinking a file another user's record still references.
type AvatarStore struct {
	Dir    string
	Repo   repo.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

// NewAvatarStore assumes dir already exists; main creates it at startup.
func NewAvatarStore(dir string, r repo.UserRepository, rdb *redis.Client, logger *logrus.Logger) *AvatarStore {
	return &AvatarStore{Dir: dir, Repo: r, Redis: rdb, Logger: logger}
}

// SaveAvatar hashes data, writes it under the user's directory, points the
// user record at the new filename and returns the base64 encoding of the
// bytes. Writing identical content twice lands on the same path, so the
// write is overwrite-safe.
func (s *AvatarStore) SaveAvatar(ctx context.Context, userID string, data []byte) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	filename := hex.EncodeToString(sum[:]) + ".png"

	userDir := filepath.Join(s.Dir, u.ID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.IO, "failed to create user avatar directory", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, filename), data, 0o644); err != nil {
		return "", apperrors.Wrap(apperrors.IO, "failed to write avatar file", err)
	}

	if err := s.Repo.UpdateAvatar(ctx, u.ID, &filename); err != nil {
		return "", err
	}
	s.dropCachedUser(ctx, u.ID)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "file": filename}).Info("avatar saved")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// GetAvatar returns the base64 encoding of the user's stored avatar.
func (s *AvatarStore) GetAvatar(ctx context.Context, userID string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.Avatar == nil {
		return "", apperrors.New(apperrors.NotFound, "avatar not found")
	}

	data, err := os.ReadFile(filepath.Join(s.Dir, u.ID, *u.Avatar))
	if err != nil {
		// referenced but missing on disk: data inconsistency, not a 404
		return "", apperrors.Wrap(apperrors.IO, "failed to read avatar file", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DeleteAvatar removes the stored file and clears the user's avatar field.
// A user without an avatar is a successful no-op.
func (s *AvatarStore) DeleteAvatar(ctx context.Context, userID string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.Avatar == nil {
		return nil
	}

	if err := os.Remove(filepath.Join(s.Dir, u.ID, *u.Avatar)); err != nil {
		return apperrors.Wrap(apperrors.IO, "failed to delete avatar file", err)
	}
	if err := s.Repo.UpdateAvatar(ctx, u.ID, nil); err != nil {
		return err
	}
	s.dropCachedUser(ctx, u.ID)

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("avatar deleted")
	}
	return nil
}

func (s *AvatarStore) dropCachedUser(ctx context.Context, id string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, userCacheKey(id)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", id).Warn("failed to invalidate cached user")
	}
}
