package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/paths"
	"github.com/monokit-dev/monokit/internal/ports"
)

const maxRetries = 3

// SQLiteCache implements ports.PackageCache using GORM
type SQLiteCache struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PackageCache = (*SQLiteCache)(nil)

// gormLogger wraps the monokit logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("MONOKIT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCache opens (and creates if needed) the package cache database
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets parallel CLI invocations share the cache
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PackageLocationModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate package cache schema: %w", err)
		}
	}

	logging.Logger.Debug("Package cache opened", "path", dbPath)
	return &SQLiteCache{db: db}, nil
}

// NewSQLiteCacheForHome opens the cache database inside the monokit home
func NewSQLiteCacheForHome() (*SQLiteCache, error) {
	return NewSQLiteCache(paths.GetCacheDBPath())
}

// Close closes the underlying database connection
func (c *SQLiteCache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Lookup implements PackageCache.Lookup
func (c *SQLiteCache) Lookup(ctx context.Context, root, name string) (string, error) {
	var model PackageLocationModel
	err := c.db.WithContext(ctx).
		Where("root = ? AND name = ?", filepath.Clean(root), name).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to look up package %q: %w", name, err)
	}
	return modelRelativePath(model), nil
}

// Store implements PackageCache.Store
func (c *SQLiteCache) Store(ctx context.Context, root, name, relativePath string) error {
	model := locationModel(root, name, relativePath, time.Now().UTC())

	return withRetry(func() error {
		return c.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "root"}, {Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"relative_path", "last_verified", "updated_at"}),
			}).
			Create(&model).Error
	}, maxRetries)
}

// Delete implements PackageCache.Delete
func (c *SQLiteCache) Delete(ctx context.Context, root, name string) error {
	return withRetry(func() error {
		return c.db.WithContext(ctx).
			Where("root = ? AND name = ?", filepath.Clean(root), name).
			Delete(&PackageLocationModel{}).Error
	}, maxRetries)
}

// Clear implements PackageCache.Clear
func (c *SQLiteCache) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := withRetry(func() error {
		result := c.db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&PackageLocationModel{})
		removed = result.RowsAffected
		return result.Error
	}, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to clear package cache: %w", err)
	}
	return removed, nil
}

// withRetry retries fn when SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
