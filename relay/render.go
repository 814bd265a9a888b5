// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailcourier/go-imap-courier/domain"
	"github.com/mailcourier/go-imap-courier/mail"

	"github.com/sirupsen/logrus"
)

// deliver renders one mail into outbound payloads and dispatches them.
// It reports whether anything was sent, which drives pacing; a dispatch
// error is returned alongside whatever was sent before it.
func (r *Relay) deliver(m *domain.Mail) (bool, error) {
	if len(r.configuration.Whitelist) > 0 && !r.configuration.Whitelist[m.FromAddress] {
		r.l.WithFields(logrus.Fields{"uid": m.Uid, "from": m.FromAddress}).Info("Ignoring mail from non-whitelisted sender")
		return false, nil
	}

	title := mailTitle(m)
	r.l.WithFields(logrus.Fields{"uid": m.Uid, "title": mail.ShortSubject(title)}).Info("Sending mail")

	sent := false
	switch {
	case len(m.HTMLParts) > 0:
		// The html rendering supersedes any plain text alternative.
		html := strings.Join(m.HTMLParts, "\n")
		err := r.messenger.SendDocument(title+".html", strings.NewReader(html), title)
		if err != nil {
			return sent, fmt.Errorf("could not send html document: %w", err)
		}
		sent = true

	case len(m.TextParts) > 0:
		text := strings.Join(m.TextParts, "\n")
		err := r.messenger.SendMessage(splitMessage(text, r.configuration.MaxMessageLength)[0])
		if err != nil {
			return sent, fmt.Errorf("could not send text message: %w", err)
		}
		sent = true

		// The chat message may have been truncated to its first segment;
		// a text file backup carries the full content.
		if len(text) >= 2 {
			backup := fmt.Sprintf("%s\n\n%s", title, text)
			err = r.messenger.SendDocument(title+".txt", strings.NewReader(backup), title)
			if err != nil {
				return sent, fmt.Errorf("could not send text backup document: %w", err)
			}
		}
	}

	if len(m.Attachments) > 0 {
		err := r.sendAttachments(m)
		if err != nil {
			return sent, err
		}
		sent = true
	}

	return sent, nil
}

// sendAttachments extracts every attachment into a scoped temporary
// directory and dispatches each one as a caption-less document. The
// directory is removed on all exit paths.
func (r *Relay) sendAttachments(m *domain.Mail) error {
	dir, err := os.MkdirTemp("", "imap-courier-")
	if err != nil {
		return fmt.Errorf("could not create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	for i, attachment := range m.Attachments {
		name := filepath.Base(attachment.Name)
		if len(name) == 0 || name == "." || name == string(filepath.Separator) {
			name = fmt.Sprintf("attachment-%d", i+1)
		}

		path := filepath.Join(dir, name)
		err := os.WriteFile(path, attachment.Content, 0600)
		if err != nil {
			return fmt.Errorf("could not extract attachment %s: %w", name, err)
		}

		err = r.sendDocumentFile(path, name)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Relay) sendDocumentFile(path string, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open attachment %s: %w", name, err)
	}
	defer file.Close()

	err = r.messenger.SendDocument(name, file, "")
	if err != nil {
		return fmt.Errorf("could not send attachment %s: %w", name, err)
	}

	return nil
}

func mailTitle(m *domain.Mail) string {
	sender := strings.TrimSpace(m.FromName + " " + m.FromAddress)
	return fmt.Sprintf("%s from %s", m.Subject, sender)
}
