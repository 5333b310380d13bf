package db

import (
	"blogly/config"
	"fmt"
	"log"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Instance *gorm.DB

// Init opens the configured database and stores it in Instance
func Init() {
	dialector, err := Dialector()
	if err != nil {
		panic(err)
	}
	db, err := Open(dialector)
	if err != nil || db == nil {
		panic(err)
	}
	log.Printf("Database: %s", db.Dialector.Name())
	Instance = db
}

// Dialector picks MySQL, then Postgres, then SQLite depending on what is configured
func Dialector() (gorm.Dialector, error) {
	if config.MYSQL_DSN != "" {
		dsn, err := MySQLDSN(config.MYSQL_DSN)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}
	if config.POSTGRES_DSN != "" {
		return postgres.Open(config.POSTGRES_DSN), nil
	}
	return sqlite.Open(SQLiteDSN(config.SQLITE_FILE)), nil
}

func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	logLevel := logger.Warn
	if config.DEBUG_MODE {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("db.Open: %w", err)
	}
	if dialector.Name() == "sqlite" {
		// SQLite serializes writers anyway, a single connection also keeps shared-cache memory databases alive
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db.Open: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// MySQLDSN makes sure time columns are scanned into time.Time
func MySQLDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("db.MySQLDSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// SQLiteDSN enables foreign keys, which SQLite leaves off by default, so that cascades work
func SQLiteDSN(file string) string {
	if strings.Contains(file, "_foreign_keys=") || strings.Contains(file, "_fk=") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	if !strings.HasPrefix(file, "file:") {
		file = "file:" + file
	}
	return file + "?_foreign_keys=on"
}
