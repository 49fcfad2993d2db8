// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI entry point for the usertest binary. It
// handles flag parsing, logging setup, suite selection, and exit code
// reporting.
package cmd
