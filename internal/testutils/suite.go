package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"phishing-simulator-backend/internal/config"
	"phishing-simulator-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "phishing"
	pgPassword = "phishing-test"
	pgDatabase = "phishing_test"
)

// One Postgres container serves every integration suite of the test binary.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a suite the shared Postgres database
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a handle to it.
// Requires a reachable Docker daemon.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// SetupTest empties every table before a test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties every table after a test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans data; the container lives until CleanupSharedContainer
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table in the public schema
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	var tables []string
	if err := s.DB.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		log.Printf("failed to list test tables: %v", err)
		return
	}
	existing := make([]string, 0, len(tables))
	for _, table := range tables {
		existing = append(existing, `"`+table+`"`)
	}
	if len(existing) == 0 {
		return
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(existing, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("failed to truncate test tables: %v", err)
	}
}

// CleanupSharedContainer closes the shared database and purges its container.
// repository/main_test.go calls it when the run ends or is interrupted.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	log.Printf("Purging test container %s", sharedResource.Container.Name)
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge test container: %v", err)
	}
	sharedResource = nil
	sharedPool = nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	// pgx answers as soon as the server accepts connections; gorm then migrates
	err = pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL:    dsn,
		DatabaseDriver: "postgres",
		Port:           "8080",
		LogLevel:       "debug",
		Environment:    "test",
		JWTSecret:      "test-signing-key-for-jwt-operations",
	}
	log.Printf("Shared Postgres ready on port %s", port)
	return nil
}

// SetupSQLiteDB opens a migrated sqlite database in the test's temp dir.
// Repository tests use it when they do not need Postgres-specific behaviour.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(path, &database.Options{
		Driver:   "sqlite",
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
