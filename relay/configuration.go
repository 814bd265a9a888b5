// SPDX-License-Identifier: GPL-3.0-or-later
package relay

import (
	"fmt"
	"time"
)

const (
	DefaultPaceDelay        = 5 * time.Second
	DefaultMaxMessageLength = 4091
)

type ConfigFunc func(c *configuration) error

func Whitelist(addresses []string) ConfigFunc {
	return func(c *configuration) error {
		c.Whitelist = map[string]bool{}
		for _, address := range addresses {
			if len(address) == 0 {
				return fmt.Errorf("whitelist address cannot be empty")
			}
			c.Whitelist[address] = true
		}
		return nil
	}
}

func PaceDelay(delay time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if delay < 0 {
			return fmt.Errorf("PaceDelay cannot be negative")
		}

		c.PaceDelay = delay
		return nil
	}
}

func MaxMessageLength(length int) ConfigFunc {
	return func(c *configuration) error {
		if length <= 0 {
			return fmt.Errorf("MaxMessageLength must be positive")
		}

		c.MaxMessageLength = length
		return nil
	}
}

type configuration struct {
	Whitelist        map[string]bool
	PaceDelay        time.Duration
	MaxMessageLength int
}

func defaultConfiguration() *configuration {
	return &configuration{
		PaceDelay:        DefaultPaceDelay,
		MaxMessageLength: DefaultMaxMessageLength,
	}
}
