// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"

	"github.com/mailcourier/go-imap-courier/domain"
	"github.com/mailcourier/go-imap-courier/log"
	"github.com/mailcourier/go-imap-courier/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// ImapSource fetches new mails from a single imap folder. Each FetchNew
// call opens its own connection and releases it before returning, whether
// the fetch succeeds or not.
type ImapSource struct {
	server, user, password string

	configuration *configuration

	l *logrus.Logger
}

func NewImapSource(server string, user string, password string, configFunc ...ConfigFunc) (*ImapSource, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	// Validate the criteria expression once, at startup, rather than on
	// every run.
	_, err := parseCriteria(config.Criteria)
	if err != nil {
		return nil, err
	}

	return &ImapSource{
		server:        server,
		user:          user,
		password:      password,
		configuration: config,
		l:             log.Logger(log.LOG_IMAP),
	}, nil
}

func (is *ImapSource) FetchNew(lastUid uint32) ([]*domain.Mail, error) {
	connection, err := is.dial()
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}
	defer connection.Logout()

	err = connection.Login(is.user, is.password)
	if err != nil {
		return nil, fmt.Errorf("could not login to imap as %s: %v: %w", is.user, err, domain.ErrAuthentication)
	}

	baseLogger := is.l.WithFields(logrus.Fields{"server": is.server, "folder": is.configuration.Folder})
	baseLogger.Debug("Logged in to server")

	_, err = connection.Select(is.configuration.Folder, is.configuration.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("could not select folder %s: %w", is.configuration.Folder, err)
	}

	criteria, err := parseCriteria(is.configuration.Criteria)
	if err != nil {
		return nil, err
	}

	uids, err := connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder: %w", err)
	}

	newUids := uidsAbove(uids, lastUid)
	baseLogger.WithFields(logrus.Fields{"matched": len(uids), "new": len(newUids), "lastuid": lastUid}).Debug("Searched folder")
	if len(newUids) == 0 {
		return nil, nil
	}

	return is.fetchMails(connection, newUids)
}

func (is *ImapSource) fetchMails(connection *client.Client, uids []uint32) ([]*domain.Mail, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	section := &imap.BodySectionName{}
	fetchItems := []imap.FetchItem{section.FetchItem()}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- connection.UidFetch(seqset, fetchItems, messages)
	}()

	mails := []*domain.Mail{}
	for msg := range messages {
		body := msg.GetBody(section)
		if body == nil {
			is.l.WithField("uid", msg.Uid).Warn("Mail has no body section, skipping")
			continue
		}

		rawMail, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("could not read mail body: %w", err)
		}

		parsed, err := mail.Parse(rawMail)
		if err != nil {
			// A single broken mail must not end the run. It is not
			// yielded, so it will be seen again on the next run.
			is.l.WithFields(logrus.Fields{"uid": msg.Uid, "error": err}).Warn("Could not parse mail, skipping")
			continue
		}

		parsed.Uid = msg.Uid
		mails = append(mails, parsed)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}

	return mails, nil
}

func (is *ImapSource) dial() (*client.Client, error) {
	if is.configuration.SSL {
		return client.DialTLS(is.server, nil)
	}
	return client.Dial(is.server)
}
