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

// Function is one entry of the append-only function table. JitOff is the
// byte offset of the emitted entry point into the executable arena; it is
// only meaningful in JIT builds.
type Function struct {
	Name   string
	Body   *Expr
	JitOff int32
}

// Machine holds the state shared by the interpreter and the JIT backend:
// the function table and, in JIT builds, the executable arena and writer.
// A Machine is single-threaded; all evaluation happens on one call stack.
type Machine struct {
	funcs []Function
	jit   jitState
}

// lookup returns the first table entry with the given name, or nil.
// First match wins — a redefinition never shadows call sites that were
// already emitted against the first entry's offset.
func (m *Machine) lookup(name string) *Function {
	for i := range m.funcs {
		if m.funcs[i].Name == name {
			return &m.funcs[i]
		}
	}
	return nil
}

// define appends a table entry. Entries are never removed within a session.
func (m *Machine) define(name string, body *Expr, jitOff int32) {
	m.funcs = append(m.funcs, Function{Name: name, Body: body, JitOff: jitOff})
}
