package gormfx

import (
	"fmt"
	"path/filepath"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Driver is the SQL dialect to connect with.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
)

const defaultSQLiteFile = "codebar.db"

type Config struct {
	Driver Driver
	// DSN is the connection string. For SQLite it is the database file path;
	// when empty the file is placed into DataDir.
	DSN     string
	DataDir string
	// Debug logs every statement.
	Debug bool
}

func (c Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverSQLite:
		dsn := c.DSN
		if dsn == "" {
			dsn = filepath.Join(c.DataDir, defaultSQLiteFile)
		}
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(c.DSN), nil
	case DriverPostgres:
		return postgres.Open(c.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", c.Driver)
	}
}
