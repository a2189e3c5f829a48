// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"time"
)

// DurationFlag is a positive time.Duration settable from the command line.
// It implements the flag.Value interface.
type DurationFlag struct {
	time.Duration
}

// String returns the duration in time.Duration notation, or an empty string
// when unset.
func (d *DurationFlag) String() string {
	if d.Duration == 0 {
		return ""
	}
	return d.Duration.String()
}

// Set parses s with time.ParseDuration and rejects non-positive values.
func (d *DurationFlag) Set(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if parsed <= 0 {
		return errors.New("duration must be positive")
	}

	d.Duration = parsed
	return nil
}
