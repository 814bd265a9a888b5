// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"errors"
	"fmt"
	"time"

	"github.com/mailcourier/go-imap-courier/domain"
	"github.com/mailcourier/go-imap-courier/log"
	"github.com/mailcourier/go-imap-courier/mail"

	"github.com/sirupsen/logrus"
)

// Relay drives one bounded fetch → filter → render → dispatch → advance
// pass over the mailbox. It owns the single writable watermark value for
// the duration of the run.
type Relay struct {
	source     domain.MailSource
	messenger  domain.Messenger
	watermarks domain.WatermarkStore

	configuration *configuration

	sleep func(time.Duration)
	l     *logrus.Logger
}

func NewRelay(source domain.MailSource, messenger domain.Messenger, watermarks domain.WatermarkStore, configFunc ...ConfigFunc) (*Relay, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Relay{
		source:        source,
		messenger:     messenger,
		watermarks:    watermarks,
		configuration: config,
		sleep:         time.Sleep,
		l:             log.Logger(log.LOG_RELAY),
	}, nil
}

func (r *Relay) Run() error {
	lastUid, err := r.watermarks.Load()
	if err != nil {
		return fmt.Errorf("could not load watermark: %w", err)
	}

	mails, err := r.source.FetchNew(lastUid)
	if err != nil {
		if errors.Is(err, domain.ErrAuthentication) {
			// Not fatal: report it and end the run with the watermark
			// untouched.
			r.l.WithField("error", err).Error("Could not authenticate to mail server, ending run")
			return nil
		}
		return fmt.Errorf("could not fetch new mails: %w", err)
	}

	r.l.WithFields(logrus.Fields{"lastuid": lastUid, "newmails": len(mails)}).Info("Fetched new mails")

	for _, m := range mails {
		r.l.WithFields(logrus.Fields{"uid": m.Uid, "subject": mail.ShortSubject(m.Subject)}).Debug("Processing mail")

		sent, deliverErr := r.deliver(m)
		if deliverErr != nil {
			// A failed send skips the pacing delay; the mail still counts
			// as considered.
			r.l.WithFields(logrus.Fields{"uid": m.Uid, "subject": mail.ShortSubject(m.Subject), "error": deliverErr}).Warn("Could not deliver mail, skipping")
		}

		err = r.watermarks.Save(m.Uid)
		if err != nil {
			return fmt.Errorf("could not save watermark: %w", err)
		}

		if sent && deliverErr == nil {
			r.sleep(r.configuration.PaceDelay)
		}
	}

	err = r.watermarks.Flush()
	if err != nil {
		return fmt.Errorf("could not flush watermark: %w", err)
	}

	r.l.Info("All mails processed")
	return nil
}
