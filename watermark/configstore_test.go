// SPDX-License-Identifier: GPL-3.0-or-later
package watermark

import (
	"path/filepath"
	"testing"

	"github.com/mailcourier/go-imap-courier/config"
	"github.com/mailcourier/go-imap-courier/log"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		Mail: config.Mail{
			Host:     "imap.example.org:993",
			Login:    "user",
			Password: "secret",
			Criteria: "UNSEEN",
			Folder:   "INBOX",
		},
		Telegram: config.Telegram{
			Token:  "token",
			ChatId: 1,
		},
		Watermark: config.Watermark{
			Mode: config.WatermarkModeConfig,
		},
		Relay: config.Relay{
			PaceSeconds:      5,
			MaxMessageLength: 4091,
		},
	}
}

func TestConfigStore_SavePersistsToFile(t *testing.T) {
	log.InitLogging("error")
	file := filepath.Join(t.TempDir(), "config.toml")
	cfg := testConfig()

	store := NewConfigStore(file, cfg)

	uid, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), uid)

	assert.NoError(t, store.Save(42))
	assert.NoError(t, store.Flush())

	reread, err := config.ReadConfig(file)
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), reread.Mail.LastUid)
}

func TestConfigStore_SaveIgnoresRegressions(t *testing.T) {
	log.InitLogging("error")
	file := filepath.Join(t.TempDir(), "config.toml")
	cfg := testConfig()
	cfg.Mail.LastUid = 42

	store := NewConfigStore(file, cfg)

	// A lower uid neither rewrites the file nor regresses the value.
	assert.NoError(t, store.Save(7))

	uid, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), uid)
}
