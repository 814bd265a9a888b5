// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/watermark.go -package=mocks . WatermarkStore
type WatermarkStore interface {
	// Load returns the highest uid considered processed by previous runs,
	// zero if there is none.
	Load() (uint32, error)
	// Save records uid as considered. Depending on the configured durability
	// mode this is either persisted immediately or deferred to Flush.
	Save(uid uint32) error
	// Flush persists the watermark at the end of a run.
	Flush() error
}
