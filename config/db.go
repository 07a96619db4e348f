package config

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taras/musicstore/models"
)

// with this, multiple connections share a single data and schema cache,
// and an in-memory database outlives any single connection.
// see https://www.sqlite.org/sharedcache.html
const sqliteMaxOpenConns = 1

// OpenDB connects to the configured store, registers the song/author join
// table and brings the schema up to date.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(sqliteMaxOpenConns)
	}

	if err := db.SetupJoinTable(&models.Song{}, "Authors", &models.SongAuthor{}); err != nil {
		return nil, fmt.Errorf("register join table: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

var mockDBSeq int64

// OpenMock returns a fresh in-memory store with the full schema applied.
func OpenMock() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:mock%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&mockDBSeq, 1))
	return OpenDB(&Config{DBDriver: "sqlite", DBDSN: dsn})
}
