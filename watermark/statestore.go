// SPDX-License-Identifier: GPL-3.0-or-later
package watermark

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/mailcourier/go-imap-courier/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id:   "1-watermark",
			Up:   []string{`CREATE TABLE watermark (id INTEGER PRIMARY KEY CHECK (id = 0), uid INTEGER NOT NULL)`},
			Down: []string{`DROP TABLE watermark`},
		},
	},
}

// StateStore keeps the watermark in a small dedicated sqlite file. Save only
// tracks the in-run maximum; the file is written once, on Flush.
type StateStore struct {
	db *sqlx.DB

	fallback uint32
	current  uint32

	l *logrus.Logger
}

// NewStateStore opens (or creates) the state database. fallback is the
// last_uid from the config file; Load never returns less than it.
func NewStateStore(datasource string, fallback uint32) (*StateStore, error) {
	l := log.Logger(log.LOG_WATERMARK)

	if _, err := os.Stat(datasource); errors.Is(err, os.ErrNotExist) {
		l.WithField("file", datasource).Warn("No watermark state found, starting from scratch")
	}

	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}
	l.WithFields(logrus.Fields{"file": datasource, "migrations": appliedMigrations}).Debug("Connected")

	_, err = db.Exec(`INSERT OR IGNORE INTO watermark (id, uid) VALUES (0, 0)`)
	if err != nil {
		return nil, fmt.Errorf("could not initialize watermark: %w", err)
	}

	return &StateStore{
		db:       db,
		fallback: fallback,
		l:        l,
	}, nil
}

func (s *StateStore) Load() (uint32, error) {
	var uid uint32
	err := s.db.Get(&uid, `SELECT uid FROM watermark WHERE id = 0`)
	if errors.Is(err, sql.ErrNoRows) {
		uid = 0
	} else if err != nil {
		return 0, fmt.Errorf("could not query db: %w", err)
	}

	if uid < s.fallback {
		uid = s.fallback
	}

	s.current = uid
	s.l.WithField("uid", uid).Debug("Loaded watermark")
	return uid, nil
}

func (s *StateStore) Save(uid uint32) error {
	if uid > s.current {
		s.current = uid
	}
	return nil
}

func (s *StateStore) Flush() error {
	_, err := s.db.Exec(
		`UPDATE watermark SET uid = ? WHERE id = 0 AND uid < ?`,
		s.current, s.current,
	)
	if err != nil {
		return fmt.Errorf("could not persist watermark: %w", err)
	}

	s.l.WithField("uid", s.current).Info("Persisted watermark")
	return nil
}

func (s *StateStore) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	return nil
}
