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

// ExprKind tags the variants of Expr.
type ExprKind uint8

const (
	ExprAdd ExprKind = iota
	ExprSub
	ExprLesser
	ExprInt
	ExprArg
	ExprFuncDef
	ExprFuncCall
	ExprIf
	ExprNothing
)

// Expr is a tagged tree node. Field use per kind:
//
//	ExprInt                 Int
//	ExprAdd/ExprSub/ExprLesser  L, R
//	ExprFuncDef             Name, L (body)
//	ExprFuncCall            Name, L (argument)
//	ExprIf                  L (condition), R (true branch), Else
//	ExprArg, ExprNothing    no fields
//
// Each child is exclusively owned by its parent; trees are never shared.
type Expr struct {
	Kind ExprKind
	Int  int64
	Name string
	L    *Expr
	R    *Expr
	Else *Expr
}
