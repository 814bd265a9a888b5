// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// WatermarkModeConfig rewrites the config file after every processed
	// mail, keeping last_uid in the [mail] section current.
	WatermarkModeConfig = "config"
	// WatermarkModeState persists the watermark to a dedicated state
	// database once per run.
	WatermarkModeState = "state"
)

type Config struct {
	Loglevel string `toml:"loglevel,omitempty"`

	Mail      Mail              `toml:"mail"`
	Whitelist map[string]string `toml:"whitelist,omitempty"`
	Telegram  Telegram          `toml:"tg"`
	Watermark Watermark         `toml:"watermark"`
	Relay     Relay             `toml:"relay"`
}

type Mail struct {
	Host     string `toml:"host"`
	Login    string `toml:"login"`
	Password string `toml:"password"`
	LastUid  uint32 `toml:"last_uid"`
	ReadOnly bool   `toml:"read_only"`
	Criteria string `toml:"criteria"`
	Folder   string `toml:"folder"`
	SSL      bool   `toml:"ssl"`
}

type Telegram struct {
	Token  string `toml:"token"`
	ChatId int64  `toml:"chat_id"`
}

type Watermark struct {
	Mode     string `toml:"mode"`
	Database string `toml:"database"`
}

type Relay struct {
	PaceSeconds      int `toml:"pace_seconds"`
	MaxMessageLength int `toml:"max_message_length"`
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Mail: Mail{
			Criteria: "UNSEEN",
			Folder:   "INBOX",
		},
		Watermark: Watermark{
			Mode:     WatermarkModeState,
			Database: "watermark.db",
		},
		Relay: Relay{
			PaceSeconds:      5,
			MaxMessageLength: 4091,
		},
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// WriteConfig re-encodes the config to filename. Used by the config-file
// watermark mode to keep last_uid current.
func (c *Config) WriteConfig(filename string) error {
	buf := &bytes.Buffer{}
	err := toml.NewEncoder(buf).Encode(c)
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}

	err = os.WriteFile(filename, buf.Bytes(), 0600)
	if err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}

	return nil
}

// WhitelistAddresses returns the accepted sender addresses in a stable
// order. An empty result means all senders are accepted.
func (c *Config) WhitelistAddresses() []string {
	addresses := []string{}
	for _, v := range c.Whitelist {
		addresses = append(addresses, v)
	}
	sort.Strings(addresses)
	return addresses
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Mail.Host, "mail.host must not be empty, set to host:port of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Mail.Login, "mail.login must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Mail.Password, "mail.password must not be empty, set to password of mail.login on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Telegram.Token, "tg.token must not be empty, set to the telegram bot token"); err != nil {
		return err
	}

	if c.Telegram.ChatId == 0 {
		return errors.New("tg.chat_id must be set to the destination telegram chat")
	}

	switch c.Watermark.Mode {
	case WatermarkModeConfig:
	case WatermarkModeState:
		if err := validateNonEmptyStringField(c.Watermark.Database, "watermark.database must not be empty in state mode, set to a filename for the watermark database"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("watermark.mode must be either %q or %q", WatermarkModeConfig, WatermarkModeState)
	}

	if c.Relay.PaceSeconds < 0 {
		return errors.New("relay.pace_seconds must not be negative")
	}

	if c.Relay.MaxMessageLength <= 0 {
		return errors.New("relay.max_message_length must be positive")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
