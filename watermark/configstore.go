// SPDX-License-Identifier: GPL-3.0-or-later
package watermark

import (
	"fmt"

	"github.com/mailcourier/go-imap-courier/config"
	"github.com/mailcourier/go-imap-courier/log"

	"github.com/sirupsen/logrus"
)

// ConfigStore persists the watermark as the last_uid key of the config file
// itself, rewriting the file after every processed mail. Durable per mail,
// but chatty.
type ConfigStore struct {
	filename string
	cfg      *config.Config

	l *logrus.Logger
}

func NewConfigStore(filename string, cfg *config.Config) *ConfigStore {
	return &ConfigStore{
		filename: filename,
		cfg:      cfg,
		l:        log.Logger(log.LOG_WATERMARK),
	}
}

func (s *ConfigStore) Load() (uint32, error) {
	return s.cfg.Mail.LastUid, nil
}

func (s *ConfigStore) Save(uid uint32) error {
	if uid <= s.cfg.Mail.LastUid {
		return nil
	}

	s.cfg.Mail.LastUid = uid
	err := s.cfg.WriteConfig(s.filename)
	if err != nil {
		return fmt.Errorf("could not persist watermark: %w", err)
	}

	s.l.WithField("uid", uid).Debug("Persisted watermark")
	return nil
}

func (s *ConfigStore) Flush() error {
	// Save already wrote every advance through to disk.
	return nil
}
