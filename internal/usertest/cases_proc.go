// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"
	"unsafe"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "getpid", Run: runGetpid})
	Register(Case{Name: "fork_wait", Run: runForkWait})
	Register(Case{Name: "waitpid", Run: runWaitpid})
	Register(Case{Name: "clone", Run: runClone})
	Register(Case{Name: "execve", Run: runExecve})
	Register(Case{Name: "sched_yield", Run: runSchedYield})
	Register(Case{Name: "set_priority", Optional: true, Run: runSetPriority})
	Register(Case{Name: "times", Run: runTimes})
}

func runGetpid(Config) error {
	pid := ksys.Getpid()
	if pid <= 0 {
		return sysErr("getpid", pid)
	}

	ppid := ksys.Getppid()
	if ppid < 0 {
		return sysErr("getppid", ppid)
	}

	if pid == ppid {
		return fmt.Errorf("pid and ppid are both %d", pid)
	}

	return nil
}

func runForkWait(Config) error {
	const childCode = 7

	pid := ksys.Fork()
	if pid < 0 {
		return sysErr("fork", pid)
	}

	if pid == 0 {
		ksys.Exit(childCode)
	}

	var status ksys.WaitStatus

	reaped := ksys.Wait(&status)
	if reaped < 0 {
		return sysErr("wait", reaped)
	}

	if reaped != pid {
		return fmt.Errorf("wait reaped pid %d, forked %d", reaped, pid)
	}

	if !status.Exited() || status.ExitStatus() != childCode {
		return fmt.Errorf("child status %#x, expected clean exit %d", int32(status), childCode)
	}

	return nil
}

func runWaitpid(Config) error {
	const childCode = 11

	pid := ksys.Fork()
	if pid < 0 {
		return sysErr("fork", pid)
	}

	if pid == 0 {
		ksys.Exit(childCode)
	}

	var status ksys.WaitStatus

	reaped := ksys.Waitpid(int(pid), &status, 0)
	if reaped != pid {
		return sysErr("waitpid", reaped)
	}

	if !status.Exited() || status.ExitStatus() != childCode {
		return fmt.Errorf("child status %#x, expected clean exit %d", int32(status), childCode)
	}

	return nil
}

func runClone(Config) error {
	// The echo entry exits the child with its argument as exit code.
	const childCode = 42

	stack := make([]byte, 8192)

	pid := ksys.Clone(ksys.CloneEchoEntry(), childCode,
		uintptr(unsafe.Pointer(&stack[0])), uintptr(len(stack)), ksys.SIGCHLD)
	if pid < 0 {
		return sysErr("clone", pid)
	}

	var status ksys.WaitStatus

	reaped := ksys.Waitpid(int(pid), &status, 0)
	if reaped != pid {
		return sysErr("waitpid", reaped)
	}

	if !status.Exited() || status.ExitStatus() != childCode {
		return fmt.Errorf("clone child status %#x, expected exit %d",
			int32(status), childCode)
	}

	return nil
}

func runExecve(Config) error {
	pid := ksys.Fork()
	if pid < 0 {
		return sysErr("fork", pid)
	}

	if pid == 0 {
		// Exec of a nonexistent path must fail and return here.
		r := ksys.Execve("/nonexistent/usertest-exec-probe",
			[]string{"usertest-exec-probe"}, nil)
		if r < 0 {
			ksys.Exit(0)
		}

		ksys.Exit(1)
	}

	var status ksys.WaitStatus

	if reaped := ksys.Waitpid(int(pid), &status, 0); reaped != pid {
		return sysErr("waitpid", reaped)
	}

	if !status.Exited() || status.ExitStatus() != 0 {
		return fmt.Errorf("exec of missing path did not fail in child, status %#x",
			int32(status))
	}

	return nil
}

func runSchedYield(Config) error {
	for i := 0; i < 16; i++ {
		if r := ksys.SchedYield(); r < 0 {
			return sysErr("sched_yield", r)
		}
	}

	return nil
}

func runSetPriority(Config) error {
	return ksys.AsError(ksys.SetPriority(10))
}

func runTimes(Config) error {
	var tms ksys.Tms

	r := ksys.Times(&tms)
	if r < 0 {
		return sysErr("times", r)
	}

	if tms.Utime < 0 || tms.Stime < 0 {
		return fmt.Errorf("negative cpu times utime=%d stime=%d", tms.Utime, tms.Stime)
	}

	return nil
}
