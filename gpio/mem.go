// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package gpio

import (
	"errors"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

const memLength = 4096

var (
	// The memlock covers read/modify/write access to the mem block.
	// Individual reads and writes can skip the lock on the assumption that
	// concurrent register writes are atomic. e.g. Read, Write and Mode.
	memlock sync.Mutex
	mem     []uint32
	mem8    []uint8
)

// Open and memory map GPIO memory range from /dev/gpiomem .
func Open() error {
	memlock.Lock()
	defer memlock.Unlock()
	if len(mem) != 0 {
		return ErrAlreadyOpen
	}
	file, err := os.OpenFile("/dev/gpiomem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return err
	}
	defer file.Close()

	mem8, err = unix.Mmap(
		int(file.Fd()),
		0,
		memLength,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED)
	if err != nil {
		return err
	}
	mem = unsafe.Slice((*uint32)(unsafe.Pointer(&mem8[0])), len(mem8)/4)
	return nil
}

// Close unmaps GPIO memory.
func Close() error {
	memlock.Lock()
	defer memlock.Unlock()
	if len(mem) == 0 {
		return ErrNotOpen
	}
	mem = nil
	err := unix.Munmap(mem8)
	mem8 = nil
	return err
}

var (
	// ErrAlreadyOpen indicates the mem is already open.
	ErrAlreadyOpen = errors.New("already open")

	// ErrNotOpen indicates the mem is not open.
	ErrNotOpen = errors.New("not open")
)
