// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	stdmail "net/mail"
	"strings"
	"unicode/utf8"

	"github.com/mailcourier/go-imap-courier/domain"

	"github.com/jhillyerd/enmime"
)

// Parse decodes a raw RFC822 message into a domain.Mail. The uid is not
// known at this level and is left zero for the caller to fill in.
func Parse(rawMail []byte) (*domain.Mail, error) {
	envelope, err := enmime.ReadEnvelope(bytes.NewReader(rawMail))
	if err != nil {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	m := &domain.Mail{
		Subject: envelope.GetHeader("Subject"),
	}

	from := envelope.GetHeader("From")
	address, err := stdmail.ParseAddress(from)
	if err == nil {
		m.FromName = address.Name
		m.FromAddress = address.Address
	} else {
		// Keep whatever was in the header so whitelisting and captions
		// still have something to work with.
		m.FromAddress = strings.TrimSpace(from)
	}

	if len(envelope.Text) > 0 {
		m.TextParts = []string{envelope.Text}
	}
	if len(envelope.HTML) > 0 {
		m.HTMLParts = []string{envelope.HTML}
	}

	for _, part := range envelope.Attachments {
		m.Attachments = append(
			m.Attachments,
			domain.Attachment{
				Name:    part.FileName,
				Content: part.Content,
			},
		)
	}

	// Inline parts with a filename (typically embedded images) are relayed
	// like regular attachments.
	for _, part := range envelope.Inlines {
		if len(part.FileName) == 0 {
			continue
		}
		m.Attachments = append(
			m.Attachments,
			domain.Attachment{
				Name:    part.FileName,
				Content: part.Content,
			},
		)
	}

	return m, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		cut := 30
		for cut > 0 && !utf8.RuneStart(subject[cut]) {
			cut--
		}
		subject = subject[:cut] + "..."
	}
	return subject
}
