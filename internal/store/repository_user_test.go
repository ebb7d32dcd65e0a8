package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	db := &DB{
		DB:              conn,
		sb:              squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		errorClassifier: NewPostgresErrorClassifier(),
		dialect:         "pgx",
		logger:          l,
	}
	return db, mock, conn
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, conn := newTestDB(t)
	repo := &userRepository{db: db, logger: db.logger}
	return repo, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:          "john@example.com",
		HashedPassword: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "email", "hashed_password", "created_at"}).
		AddRow(1, user.Email, user.HashedPassword, now)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.HashedPassword).
		WillReturnRows(rows)
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_BeginError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestCreateUser_CommitError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "email", "hashed_password", "created_at"}).
		AddRow(1, "john@example.com", "hash", time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(rows)
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "email", "hashed_password", "created_at"}).
		AddRow(7, "alice@example.com", "hash", now)

	mock.ExpectQuery("SELECT id, email, hashed_password, created_at FROM users").
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.HashedPassword != "hash" {
		t.Errorf("expected hashed password to be scanned, got %q", found.HashedPassword)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, hashed_password, created_at FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, hashed_password, created_at FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByEmail(context.Background(), "alice@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
