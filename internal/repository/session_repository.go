package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// SessionRepository persists the single operator session (role plus current
// student snapshot) so it survives a process restart.
type SessionRepository struct {
	store store.Store
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Get returns the persisted session, or nil when no one is signed in.
func (r *SessionRepository) Get(ctx context.Context) (*models.Session, error) {
	raw, found, err := r.store.Load(ctx, store.KeyRole)
	if err != nil {
		return nil, fmt.Errorf("load session role: %w", err)
	}
	if !found {
		return nil, nil
	}
	var role models.Role
	if err := json.Unmarshal(raw, &role); err != nil {
		return nil, nil
	}

	session := &models.Session{Role: role}
	raw, found, err = r.store.Load(ctx, store.KeyCurrentStudent)
	if err != nil {
		return nil, fmt.Errorf("load session student: %w", err)
	}
	if found {
		var student models.StudentUser
		if err := json.Unmarshal(raw, &student); err == nil {
			session.Student = &student
		}
	}
	return session, nil
}

// Set persists the session snapshot. A nil student clears the student key so
// an admin session never carries a stale student identity.
func (r *SessionRepository) Set(ctx context.Context, session models.Session) error {
	roleRaw, err := json.Marshal(session.Role)
	if err != nil {
		return fmt.Errorf("encode session role: %w", err)
	}
	batch := store.NewBatch()
	batch.Set(store.KeyRole, roleRaw)
	if session.Student != nil {
		studentRaw, err := json.Marshal(session.Student)
		if err != nil {
			return fmt.Errorf("encode session student: %w", err)
		}
		batch.Set(store.KeyCurrentStudent, studentRaw)
	} else {
		batch.Delete(store.KeyCurrentStudent)
	}
	return r.store.Apply(ctx, batch)
}

// Clear removes the session unconditionally. Safe to call when signed out.
func (r *SessionRepository) Clear(ctx context.Context) error {
	batch := store.NewBatch()
	batch.Delete(store.KeyRole)
	batch.Delete(store.KeyCurrentStudent)
	return r.store.Apply(ctx, batch)
}
