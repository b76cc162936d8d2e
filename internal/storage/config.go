package storage

import (
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/codebar/admin/pkg/gormfx"
)

type Driver string

const (
	DriverBadger   Driver = "badger"
	DriverSQLite   Driver = Driver(gormfx.DriverSQLite)
	DriverMySQL    Driver = Driver(gormfx.DriverMySQL)
	DriverPostgres Driver = Driver(gormfx.DriverPostgres)
)

type Config struct {
	Driver Driver

	Badger badgerfx.Config
	SQL    gormfx.Config
}
