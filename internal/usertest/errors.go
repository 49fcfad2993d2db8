// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import "errors"

var (
	// ErrPanic is returned if a case panicked instead of reporting.
	ErrPanic = errors.New("case panicked")

	// ErrUnknownConfigKey is returned for configuration keys this suite does
	// not know, so typos do not silently run a default.
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)
