// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWhitelist(t *testing.T) {
	tests := []struct {
		name          string
		input         []string
		expected      *configuration
		expectedError error
	}{
		{"ok", []string{"a@example.org", "b@example.org"}, &configuration{Whitelist: map[string]bool{"a@example.org": true, "b@example.org": true}}, nil},
		{"empty", []string{}, &configuration{Whitelist: map[string]bool{}}, nil},
		{"emptyaddress", []string{""}, nil, fmt.Errorf("whitelist address cannot be empty")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := Whitelist(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestPaceDelay(t *testing.T) {
	tests := []struct {
		name          string
		input         time.Duration
		expected      *configuration
		expectedError error
	}{
		{"ok", 2 * time.Second, &configuration{PaceDelay: 2 * time.Second}, nil},
		{"zero", 0, &configuration{}, nil},
		{"negative", -1 * time.Second, nil, fmt.Errorf("PaceDelay cannot be negative")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := PaceDelay(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestMaxMessageLength(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		expected      *configuration
		expectedError error
	}{
		{"ok", 1000, &configuration{MaxMessageLength: 1000}, nil},
		{"zero", 0, nil, fmt.Errorf("MaxMessageLength must be positive")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := MaxMessageLength(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}
