package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/migrations"
	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/uow"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	require.NoError(t, logger.Initialize("debug", "test"))
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, migrations.Up(dsn))
	return db
}

// testRepos bundles every postgres repository over one database.
type testRepos struct {
	db         *sqlx.DB
	uow        *uow.UnitOfWork
	usersR     *UserReadRepository
	usersW     *UserWriteRepository
	dogsR      *DogReadRepository
	dogsW      *DogWriteRepository
	requestsR  *FriendRequestReadRepository
	requestsW  *FriendRequestWriteRepository
	chatsR     *ChatReadRepository
	chatsW     *ChatWriteRepository
	locationsR *LocationReadRepository
	locationsW *LocationWriteRepository
}

func newTestRepos(t *testing.T) *testRepos {
	db := setupPostgres(t)
	tx := uow.TxFromContext
	return &testRepos{
		db:         db,
		uow:        uow.New(db),
		usersR:     NewUserReadRepository(db, tx),
		usersW:     NewUserWriteRepository(db, tx),
		dogsR:      NewDogReadRepository(db, tx),
		dogsW:      NewDogWriteRepository(db, tx),
		requestsR:  NewFriendRequestReadRepository(db, tx),
		requestsW:  NewFriendRequestWriteRepository(db, tx),
		chatsR:     NewChatReadRepository(db, tx),
		chatsW:     NewChatWriteRepository(db, tx),
		locationsR: NewLocationReadRepository(db, tx),
		locationsW: NewLocationWriteRepository(db, tx),
	}
}

func (r *testRepos) createUser(t *testing.T, username string) *models.UserDB {
	t.Helper()
	user, err := r.usersW.Create(context.Background(), username+"@example.com", username, "hash")
	require.NoError(t, err)
	return user
}

func (r *testRepos) befriend(t *testing.T, a, b uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	req, err := r.requestsW.Create(ctx, a, b)
	require.NoError(t, err)
	_, err = r.requestsW.UpdateStatus(ctx, req.ID, models.FriendRequestAccepted)
	require.NoError(t, err)
}
