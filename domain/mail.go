// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Mail is a parsed mailbox message. It is immutable once fetched and owned
// by the run that fetched it.
type Mail struct {
	Uid         uint32
	Subject     string
	FromName    string
	FromAddress string
	TextParts   []string
	HTMLParts   []string
	Attachments []Attachment
}

type Attachment struct {
	Name    string
	Content []byte
}
