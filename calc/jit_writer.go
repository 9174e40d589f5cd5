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

// Reg represents a hardware register index. The actual register constants
// (RegRAX, RegR8, etc.) are defined in architecture-specific files.
type Reg uint8

// JITWriter is the platform-independent code emitter scaffold over the
// executable arena. The write cursor only moves forward; the one exception
// is ResolveFixups, which patches previously reserved 4-byte displacement
// windows inside the current emission unit. Architecture-specific emit
// methods are defined in jit_emit_<arch>.go files.
type JITWriter struct {
	Ptr   unsafe.Pointer // current write pointer
	Start unsafe.Pointer // arena start for position calculation
	End   unsafe.Pointer // arena end

	Labels    [64]int32
	LabelNext uint8

	Fixups    [128]JITFixup
	FixupNext uint8
}

// JITFixup records a forward reference that must be patched once its label
// is placed.
type JITFixup struct {
	CodePos  int32 // position of the displacement field in code
	LabelID  uint8 // target label
	Size     uint8 // displacement width in bytes (4 = rel32)
	Relative bool  // true for PC-relative jumps
}

func NewJITWriter(start unsafe.Pointer, size int) *JITWriter {
	return &JITWriter{Ptr: start, Start: start, End: unsafe.Add(start, size)}
}

// Pos returns the current write offset from the arena start.
func (w *JITWriter) Pos() int32 {
	return int32(uintptr(w.Ptr) - uintptr(w.Start))
}

// ReserveLabel allocates a label ID for later placement via MarkLabel.
func (w *JITWriter) ReserveLabel() uint8 {
	if int(w.LabelNext) == len(w.Labels) {
		panic("jit: too many labels")
	}
	id := w.LabelNext
	w.LabelNext++
	w.Labels[id] = -1 // undefined until MarkLabel
	return id
}

// MarkLabel sets the position of a previously reserved label.
func (w *JITWriter) MarkLabel(id uint8) {
	w.Labels[id] = w.Pos()
}

// AddFixup records a forward reference to be patched by ResolveFixups.
func (w *JITWriter) AddFixup(labelID uint8, size uint8, relative bool) {
	if int(w.FixupNext) == len(w.Fixups) {
		panic("jit: too many fixups")
	}
	w.Fixups[w.FixupNext] = JITFixup{
		CodePos:  w.Pos(),
		LabelID:  labelID,
		Size:     size,
		Relative: relative,
	}
	w.FixupNext++
}

// ResolveFixups patches all recorded forward references and resets the
// label and fixup tables, so each top-level emission is self-contained.
func (w *JITWriter) ResolveFixups() {
	for i := uint8(0); i < w.FixupNext; i++ {
		f := &w.Fixups[i]
		targetPos := w.Labels[f.LabelID]
		if targetPos < 0 {
			panic("jit: undefined label")
		}
		patchAddr := unsafe.Add(w.Start, int(f.CodePos))
		if f.Relative {
			*(*int32)(patchAddr) = targetPos - (f.CodePos + int32(f.Size))
		} else {
			*(*int32)(patchAddr) = targetPos
		}
	}
	w.FixupNext = 0
	w.LabelNext = 0
}
