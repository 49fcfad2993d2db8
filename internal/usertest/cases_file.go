// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"bytes"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "write_read", Run: runWriteRead})
	Register(Case{Name: "openat", Run: runOpenat})
	Register(Case{Name: "pipe", Run: runPipe})
	Register(Case{Name: "pipe_concurrent", Run: runPipeConcurrent})
	Register(Case{Name: "dup", Run: runDup})
	Register(Case{Name: "dup2", Run: runDup2})
	Register(Case{Name: "mkdir", Run: runMkdir})
	Register(Case{Name: "getdents", Run: runGetdents})
	Register(Case{Name: "link_unlink", Run: runLinkUnlink})
	Register(Case{Name: "mount", Optional: true, Run: runMount})
}

// createFile writes payload to a fresh scratch file and closes it.
func createFile(path string, payload []byte) error {
	fd := ksys.Openat(ksys.AT_FDCWD, path, ksys.O_CREATE|ksys.O_RDWR)
	if fd < 0 {
		return sysErr("openat "+path, fd)
	}

	defer ksys.Close(int(fd))

	if n := ksys.Write(int(fd), payload); n != int64(len(payload)) {
		return sysErr("write "+path, n)
	}

	return nil
}

// readFile reads at most len(buf) bytes of path into buf.
func readFile(path string, buf []byte) (int64, error) {
	fd := ksys.Open(path, ksys.O_RDONLY)
	if fd < 0 {
		return 0, sysErr("open "+path, fd)
	}

	defer ksys.Close(int(fd))

	n := ksys.Read(int(fd), buf)
	if n < 0 {
		return 0, sysErr("read "+path, n)
	}

	return n, nil
}

func runWriteRead(cfg Config) error {
	path := cfg.scratch("write_read.dat")
	payload := []byte("Hello, kernel!")

	if err := createFile(path, payload); err != nil {
		return err
	}

	buf := make([]byte, 64)

	n, err := readFile(path, buf)
	if err != nil {
		return err
	}

	if !bytes.Equal(payload, buf[:n]) {
		return fmt.Errorf("read back %q, wrote %q", buf[:n], payload)
	}

	return ksys.AsError(ksys.Unlink(path))
}

func runOpenat(cfg Config) error {
	dir := cfg.scratch("openat.d")

	if r := ksys.Mkdir(dir, 0o755); r < 0 {
		return sysErr("mkdir "+dir, r)
	}

	dirFd := ksys.Open(dir, ksys.O_DIRECTORY|ksys.O_RDONLY)
	if dirFd < 0 {
		return sysErr("open "+dir, dirFd)
	}

	defer ksys.Close(int(dirFd))

	fd := ksys.Openat(int(dirFd), "f", ksys.O_CREATE|ksys.O_RDWR)
	if fd < 0 {
		return sysErr("openat relative", fd)
	}

	defer ksys.Close(int(fd))

	if n := ksys.Write(int(fd), []byte("x")); n != 1 {
		return sysErr("write", n)
	}

	return ksys.AsError(ksys.Unlinkat(int(dirFd), "f", 0))
}

func runPipe(Config) error {
	var fds [2]int32

	if r := ksys.Pipe(&fds); r < 0 {
		return sysErr("pipe", r)
	}

	defer ksys.Close(int(fds[0]))
	defer ksys.Close(int(fds[1]))

	payload := []byte("through the pipe")

	if n := ksys.Write(int(fds[1]), payload); n != int64(len(payload)) {
		return sysErr("write", n)
	}

	buf := make([]byte, len(payload))

	if n := ksys.Read(int(fds[0]), buf); n != int64(len(payload)) {
		return sysErr("read", n)
	}

	if !bytes.Equal(payload, buf) {
		return fmt.Errorf("read back %q, wrote %q", buf, payload)
	}

	return nil
}

// runPipeConcurrent streams data through a pipe with reader and writer
// running at the same time, exercising pipe blocking behavior.
func runPipeConcurrent(Config) error {
	var fds [2]int32

	if r := ksys.Pipe(&fds); r < 0 {
		return sysErr("pipe", r)
	}

	const (
		chunkSize = 512
		chunks    = 64
	)

	var group errgroup.Group

	group.Go(func() error {
		defer ksys.Close(int(fds[1]))

		chunk := bytes.Repeat([]byte{0x5a}, chunkSize)

		for i := 0; i < chunks; i++ {
			for sent := 0; sent < len(chunk); {
				n := ksys.Write(int(fds[1]), chunk[sent:])
				if n < 0 {
					return sysErr("write", n)
				}

				sent += int(n)
			}
		}

		return nil
	})

	group.Go(func() error {
		defer ksys.Close(int(fds[0]))

		var total int64

		buf := make([]byte, chunkSize)

		for {
			n := ksys.Read(int(fds[0]), buf)
			if n < 0 {
				return sysErr("read", n)
			}

			if n == 0 {
				break
			}

			total += n
		}

		if total != chunkSize*chunks {
			return fmt.Errorf("streamed %d bytes, expected %d", total, chunkSize*chunks)
		}

		return nil
	})

	return group.Wait()
}

func runDup(cfg Config) error {
	path := cfg.scratch("dup.dat")

	if err := createFile(path, []byte("a")); err != nil {
		return err
	}

	defer ksys.Unlink(path)

	fd := ksys.Open(path, ksys.O_RDONLY)
	if fd < 0 {
		return sysErr("open", fd)
	}

	defer ksys.Close(int(fd))

	dupFd := ksys.Dup(int(fd))
	if dupFd < 0 {
		return sysErr("dup", dupFd)
	}

	defer ksys.Close(int(dupFd))

	if dupFd == fd {
		return fmt.Errorf("dup returned the original descriptor %d", fd)
	}

	buf := make([]byte, 1)

	if n := ksys.Read(int(dupFd), buf); n != 1 {
		return sysErr("read via dup", n)
	}

	return nil
}

func runDup2(cfg Config) error {
	path := cfg.scratch("dup2.dat")

	if err := createFile(path, []byte("b")); err != nil {
		return err
	}

	defer ksys.Unlink(path)

	fd := ksys.Open(path, ksys.O_RDONLY)
	if fd < 0 {
		return sysErr("open", fd)
	}

	defer ksys.Close(int(fd))

	const target = 100

	if r := ksys.Dup2(int(fd), target); r != target {
		return sysErr("dup2", r)
	}

	defer ksys.Close(target)

	buf := make([]byte, 1)

	if n := ksys.Read(target, buf); n != 1 {
		return sysErr("read via dup2", n)
	}

	return nil
}

func runMkdir(cfg Config) error {
	dir := cfg.scratch("mkdir.d")

	if r := ksys.Mkdir(dir, 0o755); r < 0 {
		return sysErr("mkdir", r)
	}

	if r := ksys.Mkdir(dir, 0o755); r >= 0 {
		return fmt.Errorf("second mkdir of %s succeeded", dir)
	}

	fd := ksys.Open(dir, ksys.O_DIRECTORY|ksys.O_RDONLY)
	if fd < 0 {
		return sysErr("open created dir", fd)
	}

	return ksys.AsError(ksys.Close(int(fd)))
}

func runGetdents(cfg Config) error {
	dir := cfg.scratch("getdents.d")

	if r := ksys.Mkdir(dir, 0o755); r < 0 {
		return sysErr("mkdir", r)
	}

	if err := createFile(dir+"/entry", []byte("x")); err != nil {
		return err
	}

	defer ksys.Unlink(dir + "/entry")

	fd := ksys.Open(dir, ksys.O_DIRECTORY|ksys.O_RDONLY)
	if fd < 0 {
		return sysErr("open dir", fd)
	}

	defer ksys.Close(int(fd))

	buf := make([]byte, 1024)

	n := ksys.Getdents(int(fd), buf)
	if n <= 0 {
		return sysErr("getdents", n)
	}

	if !bytes.Contains(buf[:n], []byte("entry")) {
		return fmt.Errorf("created entry missing from %d bytes of records", n)
	}

	return nil
}

func runLinkUnlink(cfg Config) error {
	oldPath := cfg.scratch("link.old")
	newPath := cfg.scratch("link.new")
	payload := []byte("linked")

	if err := createFile(oldPath, payload); err != nil {
		return err
	}

	defer ksys.Unlink(oldPath)

	if r := ksys.Link(oldPath, newPath); r < 0 {
		return sysErr("link", r)
	}

	buf := make([]byte, len(payload))

	if _, err := readFile(newPath, buf); err != nil {
		return err
	}

	if !bytes.Equal(payload, buf) {
		return fmt.Errorf("link content %q, expected %q", buf, payload)
	}

	if r := ksys.Unlink(newPath); r < 0 {
		return sysErr("unlink", r)
	}

	if fd := ksys.Open(newPath, ksys.O_RDONLY); fd >= 0 {
		ksys.Close(int(fd))

		return fmt.Errorf("%s still opens after unlink", newPath)
	}

	return nil
}

func runMount(cfg Config) error {
	target := cfg.scratch("mount.d")

	if r := ksys.Mkdir(target, 0o755); r < 0 {
		return sysErr("mkdir", r)
	}

	if r := ksys.Mount("none", target, cfg.MountFSType, 0, ""); r < 0 {
		return sysErr("mount "+cfg.MountFSType, r)
	}

	return ksys.AsError(ksys.Umount(target))
}
