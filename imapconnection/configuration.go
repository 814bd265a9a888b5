// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import "fmt"

type ConfigFunc func(c *configuration) error

func Folder(folder string) ConfigFunc {
	return func(c *configuration) error {
		if len(folder) == 0 {
			return fmt.Errorf("Folder cannot be empty")
		}

		c.Folder = folder
		return nil
	}
}

func Criteria(criteria string) ConfigFunc {
	return func(c *configuration) error {
		if len(criteria) == 0 {
			return fmt.Errorf("Criteria cannot be empty")
		}

		c.Criteria = criteria
		return nil
	}
}

func ReadOnly() ConfigFunc {
	return func(c *configuration) error {
		c.ReadOnly = true
		return nil
	}
}

func SSL() ConfigFunc {
	return func(c *configuration) error {
		c.SSL = true
		return nil
	}
}

type configuration struct {
	Folder   string
	Criteria string
	ReadOnly bool
	SSL      bool
}

func defaultConfiguration() *configuration {
	return &configuration{
		Folder:   "INBOX",
		Criteria: "UNSEEN",
	}
}
