package avatars

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/uploadvault/internal/common"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestSetSlot_AvatarWritesOnlyCustomColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO user_avatars \(user_id, custom_upload_id\).*DO UPDATE SET custom_upload_id = EXCLUDED\.custom_upload_id`).
		WithArgs("u1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetSlot(context.Background(), "u1", upload.RoleAvatar, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetSlot_GravatarWritesOnlyGravatarColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO user_avatars \(user_id, gravatar_upload_id\).*DO UPDATE SET gravatar_upload_id = EXCLUDED\.gravatar_upload_id`).
		WithArgs("u1", int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetSlot(context.Background(), "u1", upload.RoleGravatar, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetSlot_QueryNeverMentionsTheOtherSlot(t *testing.T) {
	for role, other := range map[upload.Role]string{
		upload.RoleAvatar:   "gravatar_upload_id",
		upload.RoleGravatar: "custom_upload_id",
	} {
		col := slotColumns[role]
		if strings.Contains(col, other) {
			t.Fatalf("slot column %q for role %q overlaps %q", col, role, other)
		}
	}
}

func TestSetSlot_UnknownRoleIsAnError(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	err := repo.SetSlot(context.Background(), "u1", upload.RoleCustomEmoji, 7)
	if err == nil || !strings.Contains(err.Error(), "no avatar slot") {
		t.Fatalf("expected no-slot error, got %v", err)
	}
}

func TestSetSlot_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO user_avatars`).
		WithArgs("u1", int64(5)).
		WillReturnError(errors.New("db is down"))

	err := repo.SetSlot(context.Background(), "u1", upload.RoleAvatar, 5)
	if err == nil || !strings.Contains(err.Error(), "db error") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_ReturnsBothSlots(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "custom_upload_id", "gravatar_upload_id"}).
		AddRow("u1", int64(5), nil)

	mock.ExpectQuery(`SELECT user_id, custom_upload_id, gravatar_upload_id FROM user_avatars WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomUploadID == nil || *got.CustomUploadID != 5 {
		t.Fatalf("want custom slot 5, got %+v", got.CustomUploadID)
	}
	if got.GravatarUploadID != nil {
		t.Fatalf("gravatar slot must stay nil, got %v", *got.GravatarUploadID)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, custom_upload_id, gravatar_upload_id FROM user_avatars WHERE user_id = \$1`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nobody")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
