package migrations_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VladPetriv/fathom_migrator/pkg/database"
	"github.com/VladPetriv/fathom_migrator/pkg/logger"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

const (
	postgresUser     = "postgres"
	postgresPassword = "postgres"
	postgresDatabase = "postgres"
)

var (
	postgresDB   *database.PostgreSQL
	postgresPort string
	log          *logger.Logger
	dockerErr    error
)

func TestMain(m *testing.M) {
	log = logger.NewNop()

	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		dockerErr = fmt.Errorf("could not connect to Docker: %w", err)
		m.Run()
		return
	}

	resource, err := pool.Run(
		"postgres",
		"16-alpine",
		[]string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		})
	if err != nil {
		dockerErr = fmt.Errorf("could not start resource: %w", err)
		m.Run()
		return
	}

	postgresPort = resource.GetPort("5432/tcp")
	pool.MaxWait = 2 * time.Minute

	retryErr := pool.Retry(func() error {
		var err error
		postgresDB, err = database.Connect(context.Background(), testOptions(postgresDatabase))
		return err
	})
	if retryErr != nil {
		dockerErr = fmt.Errorf("could not connect to database: %w", retryErr)
	}

	defer func() {
		if postgresDB != nil {
			err := postgresDB.Close()
			if err != nil {
				log.Error().Msgf("could not close database: %s", err)
			}
		}

		err = pool.Purge(resource)
		if err != nil {
			log.Error().Msgf("could not purge resource: %s", err)
		}
	}()

	m.Run()
}

func testOptions(databaseName string) database.PostgreSQLOptions {
	return database.PostgreSQLOptions{
		User:             postgresUser,
		Password:         postgresPassword,
		Database:         databaseName,
		Host:             "localhost",
		Port:             postgresPort,
		SSLMode:          "disable",
		ConnectTimeout:   5 * time.Second,
		StatementTimeout: 10 * time.Second,
	}
}

// createTestDB creates a throwaway database holding an empty sales_reps table.
func createTestDB(t *testing.T) *database.PostgreSQL {
	t.Helper()

	if dockerErr != nil {
		t.Skipf("postgres is not available: %s", dockerErr)
	}

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	_, err := postgresDB.DB.Exec(fmt.Sprintf("CREATE DATABASE %s;", name))
	require.NoError(t, err)

	testDB, err := database.Connect(context.Background(), testOptions(name))
	require.NoError(t, err)

	_, err = testDB.DB.Exec(`CREATE TABLE sales_reps (id SERIAL PRIMARY KEY, name TEXT NOT NULL);`)
	require.NoError(t, err)

	t.Cleanup(func() {
		testDB.Close()

		_, err := postgresDB.DB.Exec(fmt.Sprintf("DROP DATABASE %s WITH (FORCE);", name))
		require.NoError(t, err)
	})

	return testDB
}
