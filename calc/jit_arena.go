//go:build amd64 && !nojit

/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package calc

import (
	"syscall"
	"unsafe"

	"github.com/dc0d/onexit"
)

// Arena is the read/write/execute mapping all machine code is emitted into.
// It is a bump allocator: code is never reclaimed or evicted. On x86-64 the
// data and instruction views are coherent, so no icache flush is needed
// between emitting and calling.
type Arena struct {
	mem []byte
}

// NewArena maps size bytes of RWX memory and registers the unmap on exit.
func NewArena(size int) *Arena {
	mem, err := syscall.Mmap(-1, 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE|syscall.PROT_EXEC,
		syscall.MAP_PRIVATE|syscall.MAP_ANON)
	if err != nil {
		panic("jit: mmap executable arena: " + err.Error())
	}
	a := &Arena{mem: mem}
	onexit.Register(func() { syscall.Munmap(a.mem) })
	return a
}

// Base returns the start address of the arena.
func (a *Arena) Base() unsafe.Pointer {
	return unsafe.Pointer(&a.mem[0])
}
