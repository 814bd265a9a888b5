// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "io"

//go:generate mockgen -destination=mocks/messenger.go -package=mocks . Messenger
type Messenger interface {
	SendMessage(text string) error
	SendDocument(name string, content io.Reader, caption string) error
}
