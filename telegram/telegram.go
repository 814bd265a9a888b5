// SPDX-License-Identifier: GPL-3.0-or-later
package telegram

import (
	"fmt"
	"io"

	"github.com/mailcourier/go-imap-courier/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Telegram dispatches relayed mail content to a single chat via the bot API.
type Telegram struct {
	bot  *tgbotapi.BotAPI
	chat int64

	l *logrus.Logger
}

func NewTelegram(token string, chat int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("could not start telegram bot: %w", err)
	}

	l := log.Logger(log.LOG_TELEGRAM)
	l.WithFields(logrus.Fields{"bot": bot.Self.UserName, "chat": chat}).Debug("Authorized")

	return &Telegram{
		bot:  bot,
		chat: chat,
		l:    l,
	}, nil
}

func (t *Telegram) SendMessage(text string) error {
	_, err := t.bot.Send(tgbotapi.NewMessage(t.chat, text))
	if err != nil {
		return fmt.Errorf("could not send message: %w", err)
	}

	t.l.WithField("length", len(text)).Debug("Sent message")
	return nil
}

func (t *Telegram) SendDocument(name string, content io.Reader, caption string) error {
	document := tgbotapi.NewDocument(t.chat, tgbotapi.FileReader{Name: name, Reader: content})
	document.Caption = caption

	_, err := t.bot.Send(document)
	if err != nil {
		return fmt.Errorf("could not send document %s: %w", name, err)
	}

	t.l.WithField("name", name).Debug("Sent document")
	return nil
}
