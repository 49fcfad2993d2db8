// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SIGCHLD is the termination signal a child created by [Fork] or [Clone]
// delivers to its parent.
const SIGCHLD = 17

// Clone flags understood by the kernel under test.
const (
	CLONE_VM      = 0x100
	CLONE_FS      = 0x200
	CLONE_FILES   = 0x400
	CLONE_SIGHAND = 0x800
)

// Fork creates a child process that continues after this call, requesting
// child-termination notification and nothing else. Returns the child pid in
// the parent and 0 in the child.
func Fork() int64 {
	return trap(NrClone, SIGCHLD, 0, 0, 0, 0, 0)
}

// cloneTrap is the low-level clone primitive. It is a variable so tests can
// record the computed child stack pointer without trapping.
var cloneTrap = rawClone

// rawClone traps into clone with the child resuming at entry(arg) on the
// stack sp. In the parent it returns the raw clone result; the child never
// reaches the caller's frame and exits with entry's return value.
//
// Implemented per architecture in the clone_*.s files.
func rawClone(flags, sp, entry, arg uintptr) int64

// echoEntry is a child entry point that returns its argument unchanged.
// Implemented per architecture in the clone_*.s files.
func echoEntry()

// Clone creates a child that begins executing entry(arg). When stack is
// non-zero the child's initial stack pointer is stack+stackSize, since
// stacks grow downward; a zero stack is passed through untouched and the
// kernel keeps the parent's stack pointer.
//
// entry is a raw code address with register-argument calling convention, not
// a Go function value; it must not depend on the Go runtime. Returns the
// child pid in the parent. The child does not return through this function:
// when entry returns, the child exits with its result as exit code.
func Clone(entry, arg, stack, stackSize, flags uintptr) int64 {
	sp := stack
	if sp != 0 {
		sp += stackSize
	}

	return cloneTrap(flags, sp, entry, arg)
}

// CloneEchoEntry returns the entry address of a built-in child function that
// immediately returns its argument. It exists so smoke tests can observe a
// cloned child running on its own stack and exiting with a known code.
func CloneEchoEntry() uintptr {
	return entryPC(echoEntry)
}

func entryPC(fn func()) uintptr {
	return **(**uintptr)(unsafe.Pointer(&fn))
}

// Exec replaces the current process image with the program at name, passing
// no argument or environment vectors.
func Exec(name string) int64 {
	p, errv := pathArg(name)
	if p == nil {
		return errv
	}

	r := trap(NrExecve, uintptr(unsafe.Pointer(p)), 0, 0, 0, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Execve replaces the current process image with the program at name, with
// the given argument and environment vectors.
func Execve(name string, argv, envp []string) int64 {
	p, errv := pathArg(name)
	if p == nil {
		return errv
	}

	av, err := syscall.SlicePtrFromStrings(argv)
	if err != nil {
		return -int64(unix.EINVAL)
	}

	ev, err := syscall.SlicePtrFromStrings(envp)
	if err != nil {
		return -int64(unix.EINVAL)
	}

	r := trap(NrExecve,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(&av[0])),
		uintptr(unsafe.Pointer(&ev[0])), 0, 0, 0)
	runtime.KeepAlive(p)
	runtime.KeepAlive(av)
	runtime.KeepAlive(ev)

	return r
}

// WaitStatus is the status word [Wait] and [Waitpid] fill in.
type WaitStatus int32

// Exited reports whether the child terminated normally.
func (w WaitStatus) Exited() bool {
	return w&0x7f == 0
}

// ExitStatus is the exit code of a normally terminated child.
func (w WaitStatus) ExitStatus() int32 {
	return int32(w>>8) & 0xff
}

// Signaled reports whether the child was terminated by a signal.
func (w WaitStatus) Signaled() bool {
	sig := w & 0x7f
	return sig != 0 && sig != 0x7f
}

// Signal is the signal number that terminated the child.
func (w WaitStatus) Signal() int32 {
	return int32(w & 0x7f)
}

// Waitpid waits for the child pid (or any child for -1), storing its status
// word in status. options is forwarded untouched.
func Waitpid(pid int, status *WaitStatus, options int) int64 {
	r := trap(NrWait4, uintptr(pid), uintptr(unsafe.Pointer(status)), uintptr(options), 0, 0, 0)
	runtime.KeepAlive(status)

	return r
}

// Wait waits for any child with no options. It is [Waitpid] specialized to
// pid -1.
func Wait(status *WaitStatus) int64 {
	return Waitpid(-1, status, 0)
}

// Exit terminates the calling task with the given exit code. The kernel does
// not return from this call; the function can only come back under a
// substituted test trap.
func Exit(code int) {
	trap(NrExit, uintptr(code), 0, 0, 0, 0, 0)
}

// Getpid returns the pid of the calling task.
func Getpid() int64 {
	return trap(NrGetpid, 0, 0, 0, 0, 0, 0)
}

// Getppid returns the pid of the parent of the calling task.
func Getppid() int64 {
	return trap(NrGetppid, 0, 0, 0, 0, 0, 0)
}

// SchedYield relinquishes the processor.
func SchedYield() int64 {
	return trap(NrSchedYield, 0, 0, 0, 0, 0, 0)
}

// SetPriority sets the scheduling priority of the calling task. The kernel
// under test takes the priority as sole argument.
func SetPriority(prio int) int64 {
	return trap(NrSetpriority, uintptr(prio), 0, 0, 0, 0, 0)
}

// Tms is the clock-tick accounting record [Times] fills in.
type Tms struct {
	Utime  int64
	Stime  int64
	Cutime int64
	Cstime int64
}

// Times stores process times in t and returns the kernel's clock tick
// counter.
func Times(t *Tms) int64 {
	r := trap(NrTimes, uintptr(unsafe.Pointer(t)), 0, 0, 0, 0, 0)
	runtime.KeepAlive(t)

	return r
}
