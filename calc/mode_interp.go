//go:build nojit || !amd64

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

// Backend names the evaluation backend compiled into this binary.
const Backend = "interpreter"

// jitState is empty in interpreter-only builds.
type jitState struct{}

// NewMachine creates a machine. arenaSize is accepted for parity with JIT
// builds and ignored.
func NewMachine(arenaSize int) *Machine {
	_ = arenaSize
	return &Machine{}
}

// Eval evaluates one top-level expression with the tree-walking interpreter.
func (m *Machine) Eval(e *Expr, arg int64) int64 {
	return m.evalTree(e, arg)
}
