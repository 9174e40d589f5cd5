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

// evalTree is the tree-walking evaluator. arg is the value bound to the
// implicit dot argument for the sub-tree being walked — passed explicitly,
// never kept in machine state. Recursion goes through (*Machine).Eval, so
// in JIT builds a FuncCall below interpreted top-level arithmetic still
// transfers into emitted code.
func (m *Machine) evalTree(e *Expr, arg int64) int64 {
	switch e.Kind {
	case ExprAdd:
		return m.Eval(e.L, arg) + m.Eval(e.R, arg)
	case ExprSub:
		return m.Eval(e.L, arg) - m.Eval(e.R, arg)
	case ExprLesser:
		if m.Eval(e.L, arg) < m.Eval(e.R, arg) {
			return 1
		}
		return 0
	case ExprInt:
		return e.Int
	case ExprArg:
		return arg
	case ExprFuncDef:
		m.define(e.Name, e.L, 0)
		return 0
	case ExprFuncCall:
		f := m.lookup(e.Name)
		if f == nil {
			panic("undeclared " + e.Name + " function")
		}
		// the argument is evaluated in the caller's dot binding; the body
		// runs with the fresh one
		return m.Eval(f.Body, m.Eval(e.L, arg))
	case ExprIf:
		if m.Eval(e.L, arg) != 0 {
			return m.Eval(e.R, arg)
		}
		return m.Eval(e.Else, arg)
	default:
		panic("eval: unexpected expression")
	}
}
