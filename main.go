// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"time"

	"github.com/mailcourier/go-imap-courier/config"
	"github.com/mailcourier/go-imap-courier/domain"
	"github.com/mailcourier/go-imap-courier/imapconnection"
	"github.com/mailcourier/go-imap-courier/log"
	"github.com/mailcourier/go-imap-courier/relay"
	"github.com/mailcourier/go-imap-courier/telegram"
	"github.com/mailcourier/go-imap-courier/watermark"
)

const configFile = "config.toml"

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if len(conf.Loglevel) > 0 {
		log.SetLogLevel(conf.Loglevel)
	}

	var store domain.WatermarkStore
	switch conf.Watermark.Mode {
	case config.WatermarkModeConfig:
		store = watermark.NewConfigStore(configFile, conf)
	case config.WatermarkModeState:
		stateStore, err := watermark.NewStateStore(conf.Watermark.Database, conf.Mail.LastUid)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not open watermark state")
		}
		defer stateStore.Close()
		store = stateStore
	}

	messenger, err := telegram.NewTelegram(conf.Telegram.Token, conf.Telegram.ChatId)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start telegram connector")
	}

	sourceConfigs := []imapconnection.ConfigFunc{
		imapconnection.Folder(conf.Mail.Folder),
		imapconnection.Criteria(conf.Mail.Criteria),
	}
	if conf.Mail.ReadOnly {
		sourceConfigs = append(sourceConfigs, imapconnection.ReadOnly())
	}
	if conf.Mail.SSL {
		sourceConfigs = append(sourceConfigs, imapconnection.SSL())
	}

	source, err := imapconnection.NewImapSource(conf.Mail.Host, conf.Mail.Login, conf.Mail.Password, sourceConfigs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start imap connector")
	}

	whitelist := conf.WhitelistAddresses()
	if len(whitelist) > 0 {
		logger.WithField("whitelist", whitelist).Info("Ignoring mails except from whitelisted senders")
	}

	courier, err := relay.NewRelay(
		source,
		messenger,
		store,
		relay.Whitelist(whitelist),
		relay.PaceDelay(time.Duration(conf.Relay.PaceSeconds)*time.Second),
		relay.MaxMessageLength(conf.Relay.MaxMessageLength),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start relay")
	}

	err = courier.Run()
	if err != nil {
		logger.WithField("error", err).Fatal("Relaying mails failed")
	}
}
