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

import "unsafe"

// Backend names the evaluation backend compiled into this binary.
const Backend = "jit"

// jitState is the JIT half of a Machine: the executable arena, the writer
// whose cursor is the global emission position, and the native call stub.
type jitState struct {
	arena *Arena
	w     *JITWriter
	entry func(entry uintptr, arg int64) int64
}

// NewMachine maps the executable arena and emits the host-to-JIT call stub
// at offset 0:
//
//	mov r8, rbx   ; argument into the dot register
//	call rax      ; entry address
//	ret
//
// Per the internal amd64 calling convention the stub's two Go-level
// arguments arrive in RAX and RBX and the result returns in RAX, so the
// stub is the whole host/emitted-code boundary.
func NewMachine(arenaSize int) *Machine {
	m := &Machine{}
	m.jit.arena = NewArena(arenaSize)
	m.jit.w = NewJITWriter(m.jit.arena.Base(), arenaSize)
	w := m.jit.w
	w.emitMovRegReg(RegR8, RegRBX)
	w.EmitCallReg(RegRAX)
	w.EmitRet()
	m.jit.entry = makeEntryFunc(m.jit.arena.Base())
	return m
}

// makeEntryFunc reinterprets the stub address as a callable Go function
// value. A funcval's first word is the code pointer, so a pointer to a
// struct holding the address is itself a func value.
func makeEntryFunc(code unsafe.Pointer) func(uintptr, int64) int64 {
	fv := unsafe.Pointer(&struct{ code unsafe.Pointer }{code})
	return *(*func(uintptr, int64) int64)(unsafe.Pointer(&fv))
}

// Eval evaluates one top-level expression. Function definitions are
// compiled into the arena; calls transfer control into emitted code through
// the stub; everything else falls back to the tree-walking interpreter
// (only function bodies are JIT-compiled).
func (m *Machine) Eval(e *Expr, arg int64) int64 {
	switch e.Kind {
	case ExprFuncDef:
		m.codegen(e)
		m.jit.w.ResolveFixups()
		return 0
	case ExprFuncCall:
		f := m.lookup(e.Name)
		if f == nil {
			panic("undeclared " + e.Name + " function")
		}
		// the argument value is computed by host code, not emitted code
		v := m.Eval(e.L, arg)
		return m.jit.entry(uintptr(m.jit.arena.Base())+uintptr(f.JitOff), v)
	default:
		return m.evalTree(e, arg)
	}
}
