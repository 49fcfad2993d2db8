// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "gettimeofday", Run: runGettimeofday})
	Register(Case{Name: "get_time", Run: runGetTime})
	Register(Case{Name: "sleep", Run: runSleep})
	Register(Case{Name: "sleep_zero", Run: runSleepZero})
}

func runGettimeofday(Config) error {
	var tv ksys.TimeVal

	if r := ksys.SysGetTime(&tv, 0); r < 0 {
		return sysErr("gettimeofday", r)
	}

	if tv.Usec < 0 || tv.Usec >= 1_000_000 {
		return fmt.Errorf("microseconds %d out of range", tv.Usec)
	}

	return nil
}

func runGetTime(Config) error {
	ms := ksys.GetTime()
	if ms == -1 {
		return fmt.Errorf("millisecond counter unavailable")
	}

	if ms < 0 {
		return fmt.Errorf("millisecond counter %d is negative", ms)
	}

	return nil
}

func runSleep(Config) error {
	const sec = 1

	before := ksys.GetTime()
	if before == -1 {
		return fmt.Errorf("millisecond counter unavailable")
	}

	if rem := ksys.Sleep(sec); rem != 0 {
		return fmt.Errorf("sleep woke early with %d seconds remaining", rem)
	}

	after := ksys.GetTime()
	if after == -1 {
		return fmt.Errorf("millisecond counter unavailable")
	}

	// The counter wraps every 0x10000 seconds, so a smaller reading after
	// the sleep is possible and acceptable. Only a too-short forward delta
	// is a failure.
	if after >= before {
		elapsed := after - before
		if elapsed < sec*1000 {
			return fmt.Errorf("slept %d ms, requested %d s", elapsed, sec)
		}
	}

	return nil
}

func runSleepZero(Config) error {
	if rem := ksys.Sleep(0); rem != 0 {
		return fmt.Errorf("zero-length sleep reported %d seconds remaining", rem)
	}

	return nil
}
