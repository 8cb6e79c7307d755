package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"newsfeed/internal/infra/adapter/persistence/postgres"
)

const insertPattern = `INSERT INTO news_history`

func TestSubmissionLedger_CheckAndInsert_New(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(insertPattern)).
		WithArgs("https://example.com/rss", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ledger := postgres.NewSubmissionLedger(db)
	inserted, err := ledger.CheckAndInsert(context.Background(), "https://example.com/rss")
	if err != nil {
		t.Fatalf("CheckAndInsert err=%v", err)
	}
	if !inserted {
		t.Fatal("first submission should report inserted")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSubmissionLedger_CheckAndInsert_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// ON CONFLICT DO NOTHING reports zero affected rows for the loser.
	mock.ExpectExec(regexp.QuoteMeta(insertPattern)).
		WithArgs("https://example.com/rss", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ledger := postgres.NewSubmissionLedger(db)
	inserted, err := ledger.CheckAndInsert(context.Background(), "https://example.com/rss")
	if err != nil {
		t.Fatalf("CheckAndInsert err=%v", err)
	}
	if inserted {
		t.Fatal("duplicate submission must not report inserted")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSubmissionLedger_CheckAndInsert_InsertedThenDuplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(insertPattern)).
		WithArgs("https://example.com/rss", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertPattern)).
		WithArgs("https://example.com/rss", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ledger := postgres.NewSubmissionLedger(db)

	first, err := ledger.CheckAndInsert(context.Background(), "https://example.com/rss")
	if err != nil || !first {
		t.Fatalf("first call: inserted=%v err=%v", first, err)
	}
	second, err := ledger.CheckAndInsert(context.Background(), "https://example.com/rss")
	if err != nil || second {
		t.Fatalf("second call: inserted=%v err=%v", second, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSubmissionLedger_CheckAndInsert_StorageError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta(insertPattern)).
		WithArgs("https://example.com/rss", sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	ledger := postgres.NewSubmissionLedger(db)
	_, err := ledger.CheckAndInsert(context.Background(), "https://example.com/rss")
	if err == nil {
		t.Fatal("storage failure must surface as an error")
	}
}
