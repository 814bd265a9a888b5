// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"testing"

	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/assert"
)

func u32(val int) uint32 {
	return uint32(val)
}

func u32a(val ...int) []uint32 {
	a := []uint32{}
	for _, v := range val {
		a = append(a, u32(v))
	}

	return a
}

func TestUidsAbove(t *testing.T) {
	tests := []struct {
		name     string
		uids     []uint32
		lastUid  uint32
		expected []uint32
	}{
		{"all", u32a(1, 2, 3), 0, u32a(1, 2, 3)},
		{"partial", u32a(3, 6, 7), 5, u32a(6, 7)},
		{"boundary", u32a(5, 6), 5, u32a(6)},
		{"none", u32a(1, 2), 7, u32a()},
		{"unordered", u32a(9, 6, 8), 5, u32a(6, 8, 9)},
		{"empty", u32a(), 5, u32a()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, uidsAbove(tc.uids, tc.lastUid))
		})
	}
}

func TestParseCriteria(t *testing.T) {
	criteria, err := parseCriteria("UNSEEN")
	assert.NoError(t, err)
	assert.Equal(t, []string{imap.SeenFlag}, criteria.WithoutFlags)

	criteria, err = parseCriteria("")
	assert.NoError(t, err)
	assert.Equal(t, imap.NewSearchCriteria(), criteria)

	_, err = parseCriteria("NOTACRITERION")
	assert.Error(t, err)
}
