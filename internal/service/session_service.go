package service

import (
	"context"
	"fmt"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/repository"
)

// SessionService serves the signed-in user's profile, notifications and
// banner straight from the snapshot.
type SessionService struct {
	provider repository.Provider
}

func NewSessionService(provider repository.Provider) *SessionService {
	return &SessionService{provider: provider}
}

func (s *SessionService) session(ctx context.Context) (model.Session, error) {
	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return model.Session{}, fmt.Errorf("load session: %w", err)
	}
	return snap.Session, nil
}

func (s *SessionService) Profile(ctx context.Context) (model.UserProfile, error) {
	sess, err := s.session(ctx)
	return sess.Profile, err
}

func (s *SessionService) Notifications(ctx context.Context) ([]model.Notification, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Notifications == nil {
		return []model.Notification{}, nil
	}
	return sess.Notifications, nil
}

func (s *SessionService) Banner(ctx context.Context) (model.Banner, error) {
	sess, err := s.session(ctx)
	return sess.Banner, err
}
