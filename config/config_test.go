// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(file, []byte(content), 0600)
	assert.NoError(t, err)
	return file
}

const minimalConfig = `
[mail]
host = "imap.example.org:993"
login = "user"
password = "secret"

[tg]
token = "bot-token"
chat_id = 123
`

func TestReadConfigDefaults(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig))
	assert.NoError(t, err)

	assert.Equal(t, "imap.example.org:993", conf.Mail.Host)
	assert.Equal(t, uint32(0), conf.Mail.LastUid)
	assert.False(t, conf.Mail.ReadOnly)
	assert.Equal(t, "UNSEEN", conf.Mail.Criteria)
	assert.Equal(t, "INBOX", conf.Mail.Folder)
	assert.False(t, conf.Mail.SSL)
	assert.Equal(t, int64(123), conf.Telegram.ChatId)
	assert.Equal(t, WatermarkModeState, conf.Watermark.Mode)
	assert.Equal(t, "watermark.db", conf.Watermark.Database)
	assert.Equal(t, 5, conf.Relay.PaceSeconds)
	assert.Equal(t, 4091, conf.Relay.MaxMessageLength)
	assert.Empty(t, conf.WhitelistAddresses())
}

func TestReadConfigFull(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, `
loglevel = "warn"

[mail]
host = "imap.example.org:143"
login = "user"
password = "secret"
last_uid = 17
read_only = true
criteria = "ALL"
folder = "Archive"
ssl = true

[whitelist]
boss = "boss@example.org"
alerts = "alerts@example.org"

[tg]
token = "bot-token"
chat_id = -100200300

[watermark]
mode = "config"

[relay]
pace_seconds = 2
max_message_length = 1000
`))
	assert.NoError(t, err)

	assert.Equal(t, "warn", conf.Loglevel)
	assert.Equal(t, uint32(17), conf.Mail.LastUid)
	assert.True(t, conf.Mail.ReadOnly)
	assert.True(t, conf.Mail.SSL)
	assert.Equal(t, "ALL", conf.Mail.Criteria)
	assert.Equal(t, "Archive", conf.Mail.Folder)
	assert.Equal(t, []string{"alerts@example.org", "boss@example.org"}, conf.WhitelistAddresses())
	assert.Equal(t, WatermarkModeConfig, conf.Watermark.Mode)
	assert.Equal(t, 2, conf.Relay.PaceSeconds)
	assert.Equal(t, 1000, conf.Relay.MaxMessageLength)
}

func TestReadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{
			"nohost",
			`
[mail]
login = "user"
password = "secret"
[tg]
token = "t"
chat_id = 1
`,
			"mail.host must not be empty, set to host:port of the imap server",
		},
		{
			"notoken",
			`
[mail]
host = "h"
login = "user"
password = "secret"
[tg]
chat_id = 1
`,
			"tg.token must not be empty, set to the telegram bot token",
		},
		{
			"nochat",
			`
[mail]
host = "h"
login = "user"
password = "secret"
[tg]
token = "t"
`,
			"tg.chat_id must be set to the destination telegram chat",
		},
		{
			"badmode",
			minimalConfig + `
[watermark]
mode = "both"
`,
			`watermark.mode must be either "config" or "state"`,
		},
		{
			"badpace",
			minimalConfig + `
[relay]
pace_seconds = -1
`,
			"relay.pace_seconds must not be negative",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := ReadConfig(writeConfig(t, tc.content))
			assert.Nil(t, conf)
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestWriteConfigRoundtrip(t *testing.T) {
	file := writeConfig(t, minimalConfig)

	conf, err := ReadConfig(file)
	assert.NoError(t, err)

	conf.Mail.LastUid = 99
	assert.NoError(t, conf.WriteConfig(file))

	reread, err := ReadConfig(file)
	assert.NoError(t, err)
	assert.Equal(t, conf, reread)
}
