// Package iodb implements database operations on top of GORM.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gnames/winedb/pkg/config"
	"github.com/gnames/winedb/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the pure-Go "sqlite" driver
	_ "modernc.org/sqlite"
)

// gormOperator implements db.Operator interface. SQLite
// connections go through modernc.org/sqlite, PostgreSQL
// connections through a pgxpool.
type gormOperator struct {
	driver string
	gdb    *gorm.DB
	sqlDB  *sql.DB
	pool   *pgxpool.Pool
}

// NewOperator creates a new database operator
// (without connecting).
func NewOperator() db.Operator {
	return &gormOperator{}
}

// Connect opens the database selected by cfg.Driver.
func (o *gormOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	var err error
	switch cfg.Driver {
	case config.DriverSQLite:
		err = o.connectSQLite(ctx, cfg)
	case config.DriverPostgres:
		err = o.connectPostgres(ctx, cfg)
	default:
		return UnknownDriverError(cfg.Driver)
	}
	if err != nil {
		return err
	}

	o.driver = cfg.Driver
	slog.Info("Connected to database",
		"driver", cfg.Driver, "address", cfg.Address())
	return nil
}

func (o *gormOperator) connectSQLite(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	sqlDB, err := sql.Open("sqlite", sqliteDSN(cfg.Path))
	if err != nil {
		return ConnectionError(cfg, err)
	}

	// An in-memory database lives only as long as its connection,
	// every statement has to share the same one.
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return ConnectionError(cfg, err)
	}

	gdb, err := gorm.Open(
		sqlite.New(sqlite.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		sqlDB.Close()
		return ConnectionError(cfg, err)
	}

	o.sqlDB = sqlDB
	o.gdb = gdb
	return nil
}

func (o *gormOperator) connectPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return ConnectionError(cfg, err)
	}

	o.pool = pool
	o.sqlDB = sqlDB
	o.gdb = gdb
	return nil
}

// Close releases all database connections.
func (o *gormOperator) Close() error {
	var err error
	if o.sqlDB != nil {
		err = o.sqlDB.Close()
	}
	if o.pool != nil {
		o.pool.Close()
	}
	o.gdb, o.sqlDB, o.pool = nil, nil, nil
	return err
}

// DB returns the GORM handle.
func (o *gormOperator) DB() *gorm.DB {
	return o.gdb
}

// Driver returns the name of the connected engine.
func (o *gormOperator) Driver() string {
	return o.driver
}

// Tables lists user tables, skipping SQLite internal ones.
func (o *gormOperator) Tables(ctx context.Context) ([]string, error) {
	if o.gdb == nil {
		return nil, NotConnectedError()
	}

	tables, err := o.gdb.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, QueryTablesError(err)
	}

	res := make([]string, 0, len(tables))
	for _, v := range tables {
		if strings.HasPrefix(v, "sqlite_") {
			continue
		}
		res = append(res, v)
	}
	slices.Sort(res)
	return res, nil
}

// TableExists checks if a table exists in the current
// database.
func (o *gormOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.gdb == nil {
		return false, NotConnectedError()
	}

	tables, err := o.Tables(ctx)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return slices.Contains(tables, tableName), nil
}

// HasTables checks if the database has any user tables.
func (o *gormOperator) HasTables(ctx context.Context) (bool, error) {
	tables, err := o.Tables(ctx)
	if err != nil {
		return false, err
	}
	return len(tables) > 0, nil
}

// CountRows returns the number of rows in a table.
func (o *gormOperator) CountRows(
	ctx context.Context,
	tableName string,
) (int64, error) {
	if o.gdb == nil {
		return 0, NotConnectedError()
	}

	var res int64
	err := o.gdb.WithContext(ctx).Table(tableName).Count(&res).Error
	if err != nil {
		return 0, CountRowsError(tableName, err)
	}
	return res, nil
}

// sqliteDSN adds connection pragmas to a SQLite path.
// Foreign keys are off by default in SQLite.
func sqliteDSN(path string) string {
	if path == "" {
		path = config.MemoryPath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// gormConfig routes GORM SQL tracing into slog. Statements
// are traced only when debug logging is enabled.
func gormConfig() *gorm.Config {
	level := logger.Warn
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		level = logger.Info
	}

	return &gorm.Config{
		Logger: logger.NewSlogLogger(slog.Default(), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}
}
