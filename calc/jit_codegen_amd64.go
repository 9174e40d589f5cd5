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

// codegen emits stack-machine code for one expression: every sub-expression
// leaves exactly one 64-bit value pushed on the machine stack. Emission
// order is AST traversal order (left before right, condition before
// branches, argument before call) — that order is what keeps the operand
// stack balanced on every path.
func (m *Machine) codegen(e *Expr) {
	w := m.jit.w
	switch e.Kind {
	case ExprAdd:
		m.codegen(e.L)
		m.codegen(e.R)
		w.EmitPopReg(RegRCX) // right operand
		w.EmitPopReg(RegRAX) // left operand
		w.EmitAddInt64(RegRAX, RegRCX)
		w.EmitPushReg(RegRAX)
	case ExprSub:
		m.codegen(e.L)
		m.codegen(e.R)
		// the left sub-expression was emitted first and sits deeper on the
		// stack: first pop is the subtrahend, second the minuend
		w.EmitPopReg(RegRCX)
		w.EmitPopReg(RegRAX)
		w.EmitSubInt64(RegRAX, RegRCX)
		w.EmitPushReg(RegRAX)
	case ExprLesser:
		m.codegen(e.L)
		m.codegen(e.R)
		w.EmitPopReg(RegRCX)
		w.EmitPopReg(RegRAX)
		w.EmitCmpInt64(RegRAX, RegRCX)
		w.EmitSetcc(RegRAX, CcL)
		w.EmitPushReg(RegRAX)
	case ExprInt:
		w.EmitPushImm32(int32(e.Int))
	case ExprArg:
		w.EmitPushReg(RegR8)
	case ExprFuncDef:
		// register before emitting the body so recursive self-calls find
		// their own offset; no frame is set up, the function works on the
		// bare machine stack
		m.define(e.Name, e.L, w.Pos())
		m.codegen(e.L)
		w.EmitPopReg(RegRAX) // return value
		w.EmitRet()
	case ExprFuncCall:
		f := m.lookup(e.Name)
		if f == nil {
			panic("undeclared " + e.Name + " function")
		}
		w.EmitPushReg(RegR8) // save caller's dot
		m.codegen(e.L)       // argument, evaluated under the caller's dot
		w.EmitPopReg(RegR8)  // install callee's dot
		w.EmitCallRel32(f.JitOff)
		w.EmitPopReg(RegR8) // restore caller's dot
		w.EmitPushReg(RegRAX)
	case ExprIf:
		m.codegen(e.L)
		w.EmitPopReg(RegRAX)
		w.EmitCmpRegImm32(RegRAX, 0)
		labelF := w.ReserveLabel()
		labelE := w.ReserveLabel()
		w.EmitJcc(CcE, labelF)
		m.codegen(e.R)
		w.EmitJmp(labelE)
		w.MarkLabel(labelF)
		m.codegen(e.Else)
		w.MarkLabel(labelE)
	default:
		panic("jit: unexpected expression")
	}
}
