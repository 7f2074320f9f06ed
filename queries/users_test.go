package queries

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog/log"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/smartstart-platform/buz_ledger_api/model"
)

func setupTestRepo() (*Repo, sqlmock.Sqlmock) {
	logger := log.With().Str("test", "queries").Str("method", "setupTestRepo").Logger()
	db, mock, err := sqlmock.New()
	if err != nil {
		logger.Fatal().Msgf("can't create sqlmock: %s", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "postgres-mock",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Fatal().Msgf("can't open gorm connection: %s", err)
	}

	return &Repo{
		Conn:            gormDB,
		ConnReader:      gormDB,
		ConnReaderAdmin: gormDB,
	}, mock
}

func TestGetUserByID(t *testing.T) {
	repo, mock := setupTestRepo()

	Convey("it should load the stored user with its role and status", t, func() {
		rows := sqlmock.
			NewRows([]string{"id", "first_name", "last_name", "email", "role_alias", "status"}).
			AddRow(42, "Ada", "Lovelace", "ada@example.com", "member", "active")
		mock.
			ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(42)
		So(err, ShouldBeNil)
		So(user.ID, ShouldEqual, 42)
		So(user.Email, ShouldEqual, "ada@example.com")
		So(user.RoleAlias, ShouldEqual, "member")
		So(user.Status, ShouldEqual, model.UserStatusActive)
	})

	Convey("an unknown id returns record not found", t, func() {
		mock.
			ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetUserByID(7)
		So(err, ShouldResemble, gorm.ErrRecordNotFound)
	})
}
