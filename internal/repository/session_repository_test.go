package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

func TestSessionRepositoryAbsentIsNil(t *testing.T) {
	repo := NewSessionRepository(store.NewMemStore())

	session, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepositoryStudentSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepository(store.NewMemStore())
	ctx := context.Background()

	student := &models.StudentUser{ID: "s1", Email: "asha@x.com", Name: "Asha"}
	require.NoError(t, repo.Set(ctx, models.Session{Role: models.RoleStudent, Student: student}))

	session, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.RoleStudent, session.Role)
	require.NotNil(t, session.Student)
	assert.Equal(t, "asha@x.com", session.Student.Email)
}

func TestSessionRepositoryAdminSessionClearsStudent(t *testing.T) {
	repo := NewSessionRepository(store.NewMemStore())
	ctx := context.Background()

	student := &models.StudentUser{ID: "s1", Email: "asha@x.com"}
	require.NoError(t, repo.Set(ctx, models.Session{Role: models.RoleStudent, Student: student}))
	require.NoError(t, repo.Set(ctx, models.Session{Role: models.RoleAdmin}))

	session, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.Nil(t, session.Student)
}

func TestSessionRepositoryClearIsIdempotent(t *testing.T) {
	repo := NewSessionRepository(store.NewMemStore())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, models.Session{Role: models.RoleAdmin}))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	session, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}
