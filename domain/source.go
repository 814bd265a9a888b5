// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

// ErrAuthentication marks a failed mailbox login. The orchestrator reports
// it and ends the run gracefully instead of treating it as fatal.
var ErrAuthentication = errors.New("authentication failed")

//go:generate mockgen -destination=mocks/source.go -package=mocks . MailSource
type MailSource interface {
	// FetchNew returns all matching mails with a uid strictly greater than
	// lastUid, in ascending uid order. Mails that cannot be parsed are
	// skipped and not returned.
	FetchNew(lastUid uint32) ([]*Mail, error)
}
