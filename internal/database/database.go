package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle together with the pool settings it was opened with
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// schema is every table the service owns, parents first
var schema = []interface{}{
	&models.User{},
	&models.GoogleCredential{},
	&models.StateDocument{},
	&models.AuditLog{},
	&models.ConciergeRequest{},
}

type index struct {
	name string
	ddl  string
}

// indexes beyond what the gorm tags declare. Expression and partial indexes
// are understood by both postgres and sqlite.
var indexes = []index{
	{"idx_users_email_lower", "ON users(LOWER(email))"},
	{"idx_users_live", "ON users(deleted_at) WHERE deleted_at IS NULL"},
	{"idx_google_credentials_expiry", "ON google_credentials(expiry)"},
	{"idx_audit_logs_owner_created", "ON audit_logs(owner_key, created_at)"},
	{"idx_audit_logs_user_created", "ON audit_logs(user_id, created_at)"},
	{"idx_concierge_requests_email_lower", "ON concierge_requests(LOWER(email))"},
}

func open(dialector gorm.Dialector, level logger.LogLevel, cfg *config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &DB{DB: db, config: cfg}, nil
}

// New connects to postgres and fails unless the server answers a ping
func New(cfg *config.DatabaseConfig) (*DB, error) {
	db, err := open(postgres.Open(cfg.DSN()), logger.Warn, cfg)
	if err != nil {
		return nil, err
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// AutoMigrate brings every owned table up to the model definitions
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(schema...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the database within ctx
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes creates the extra indexes and returns how many failed. A
// failure is logged and does not stop the rest.
func (db *DB) CreateIndexes() int {
	failed := 0
	for _, idx := range indexes {
		err := db.Exec(fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s %s", idx.name, idx.ddl)).Error
		if err != nil {
			failed++
			slog.Warn("index not created", "index", idx.name, "error", err)
		}
	}
	return failed
}

// Initialize connects, migrates and indexes. The SQL migration set runs when
// enabled; gorm AutoMigrate covers the schema when it is disabled or broken.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	migrated := cfg.Database.AutoMigrate
	if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		migrated = false
	}
	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if failed := db.CreateIndexes(); failed > 0 {
		slog.Warn("some indexes are missing", "failed", failed, "total", len(indexes))
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}
