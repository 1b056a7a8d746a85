package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applog "stabilitylog/internal/log"
	"stabilitylog/models"
)

// SessionStore persists scs session data through gorm. It satisfies
// scs.Store and scs.CtxStore.
type SessionStore struct {
	db   *gorm.DB
	now  func() time.Time
	stop chan struct{}
	done chan struct{}
}

// NewSessionStore wraps db. When cleanupInterval is positive a background
// goroutine deletes expired sessions until StopCleanup is called.
func NewSessionStore(db *gorm.DB, cleanupInterval time.Duration) *SessionStore {
	s := &SessionStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	if cleanupInterval > 0 {
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.cleanup(cleanupInterval)
	}
	return s
}

// Find returns the data for an unexpired session token.
func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

// Commit stores data for token, replacing any previous value.
func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

// Delete removes token. Unknown tokens are not an error.
func (s *SessionStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

// FindCtx is Find with a request context.
func (s *SessionStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("token = ? AND expiry > ?", token, s.now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return session.Data, true, nil
}

// CommitCtx is Commit with a request context.
func (s *SessionStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	session := models.Session{Token: token, Data: b, Expiry: expiry.UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "expiry"}),
		}).
		Create(&session).Error
}

// DeleteCtx is Delete with a request context.
func (s *SessionStore) DeleteCtx(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes every session past its expiry and reports how many went.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expiry <= ?", s.now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

// StopCleanup halts the background cleanup goroutine, if one was started.
func (s *SessionStore) StopCleanup() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}

func (s *SessionStore) cleanup(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := s.DeleteExpired(context.Background())
			if err != nil {
				applog.Error(context.Background(), "failed to delete expired sessions", "error", err)
				continue
			}
			if removed > 0 {
				applog.Debug(context.Background(), "expired sessions removed", "count", removed)
			}
		case <-s.stop:
			return
		}
	}
}
