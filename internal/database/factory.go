package database

import (
	"github.com/Aarav718/seedkit/internal/database/mysql"
	"github.com/Aarav718/seedkit/internal/database/postgres"
	"github.com/Aarav718/seedkit/internal/database/sqlite"
)

func NewAdapter(provider string) DatabaseAdapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return mysql.New()
	}
}
