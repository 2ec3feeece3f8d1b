package profile

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "pronet-api/internal/domain/profile"
	"pronet-api/internal/domain/user"
)

var profileColumns = []string{
	"id", "name", "avatar", "title", "location", "bio", "skills",
	"experience", "education", "contact", "social", "activity",
	"created_at", "updated_at",
}

func profileRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(profileColumns).AddRow(
		uint64(7), "jane", "profile_abc_00ff.png", "Engineer", "Lisbon", "hi", "go,sql",
		json.RawMessage(`[]`), json.RawMessage(`[]`), json.RawMessage(`{}`), json.RawMessage(`{}`), json.RawMessage(`[]`),
		now, now,
	)
}

func TestRepository_GetOrCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(UpsertProfile)).
		WithArgs(user.ID(1), "jane").
		WillReturnRows(profileRow(now))

	repo := NewRepository(mock)
	p, err := repo.GetOrCreate(context.Background(), user.ID(1), "jane")
	require.NoError(t, err)

	assert.Equal(t, uint64(7), p.ID)
	assert.Equal(t, "jane", p.Name)
	assert.Equal(t, "profile_abc_00ff.png", p.Avatar)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrCreate_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(UpsertProfile)).
		WithArgs(user.ID(1), "jane").
		WillReturnError(errors.New("connection reset"))

	repo := NewRepository(mock)
	_, err = repo.GetOrCreate(context.Background(), user.ID(1), "jane")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	req := domainProfileFixture()
	mock.ExpectQuery(regexp.QuoteMeta(UpdateProfileByUserID)).
		WithArgs(
			user.ID(1), req.Name, req.Title, req.Location, req.Bio, req.Skills,
			req.Experience, req.Education, req.Contact, req.Social, req.Activity,
		).
		WillReturnRows(profileRow(now))

	repo := NewRepository(mock)
	p, err := repo.UpdateProfile(context.Background(), user.ID(1), req)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Engineer", p.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	req := domainProfileFixture()
	mock.ExpectQuery(regexp.QuoteMeta(UpdateProfileByUserID)).
		WithArgs(
			user.ID(9), req.Name, req.Title, req.Location, req.Bio, req.Skills,
			req.Experience, req.Education, req.Contact, req.Social, req.Activity,
		).
		WillReturnRows(pgxmock.NewRows(profileColumns))

	repo := NewRepository(mock)
	p, err := repo.UpdateProfile(context.Background(), user.ID(9), req)
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetAvatar(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(UpdateAvatarByUserID)).
		WithArgs(user.ID(1), "profile_abc_00ff.png").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewRepository(mock)
	require.NoError(t, repo.SetAvatar(context.Background(), user.ID(1), "profile_abc_00ff.png"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetAvatar_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// a missing profile row makes the UPDATE match nothing without an
	// Exec error; that must not pass as success
	mock.ExpectExec(regexp.QuoteMeta(UpdateAvatarByUserID)).
		WithArgs(user.ID(7), "profile_abc_00ff.png").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewRepository(mock)
	err = repo.SetAvatar(context.Background(), user.ID(7), "profile_abc_00ff.png")
	require.ErrorIs(t, err, ErrProfileNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func domainProfileFixture() (p domain.Profile) {
	p.Name = "jane"
	p.Title = "Engineer"
	p.Location = "Lisbon"
	p.Bio = "hi"
	p.Skills = "go,sql"
	p.Experience = json.RawMessage(`[]`)
	p.Education = json.RawMessage(`[]`)
	p.Contact = json.RawMessage(`{}`)
	p.Social = json.RawMessage(`{}`)
	p.Activity = json.RawMessage(`[]`)
	return p
}
