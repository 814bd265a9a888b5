// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emersion/go-imap"
)

// parseCriteria turns a search expression like "UNSEEN" or
// "FROM someone@example.org" into imap search criteria.
func parseCriteria(expression string) (*imap.SearchCriteria, error) {
	criteria := imap.NewSearchCriteria()

	fields := []interface{}{}
	for _, field := range strings.Fields(expression) {
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return criteria, nil
	}

	err := criteria.ParseWithCharset(fields, nil)
	if err != nil {
		return nil, fmt.Errorf("could not parse search criteria %q: %w", expression, err)
	}

	return criteria, nil
}

// uidsAbove keeps the uids strictly greater than lastUid, ascending.
func uidsAbove(uids []uint32, lastUid uint32) []uint32 {
	above := []uint32{}
	for _, uid := range uids {
		if uid > lastUid {
			above = append(above, uid)
		}
	}

	sort.Slice(above, func(i, j int) bool { return above[i] < above[j] })
	return above
}
