//go:build amd64

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
	"bytes"
	"testing"
	"unsafe"
)

func newTestWriter(buf []byte) *JITWriter {
	return NewJITWriter(unsafe.Pointer(&buf[0]), len(buf))
}

func emitted(w *JITWriter, buf []byte) []byte {
	return buf[:w.Pos()]
}

func TestEmit_PushPop(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	w.EmitPushReg(RegRAX)
	w.EmitPushReg(RegR8)
	w.EmitPopReg(RegRCX)
	w.EmitPopReg(RegR8)
	want := []byte{
		0x50,       // push rax
		0x41, 0x50, // push r8
		0x59,       // pop rcx
		0x41, 0x58, // pop r8
	}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
}

func TestEmit_PushImm32(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	w.EmitPushImm32(42)
	want := []byte{0x68, 0x2A, 0x00, 0x00, 0x00}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
	// negative immediates are sign-extended by the CPU
	w2 := newTestWriter(buf)
	w2.EmitPushImm32(-1)
	want2 := []byte{0x68, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(emitted(w2, buf), want2) {
		t.Fatalf("got % x, want % x", emitted(w2, buf), want2)
	}
}

func TestEmit_Alu(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	w.EmitAddInt64(RegRAX, RegRCX)
	w.EmitSubInt64(RegRAX, RegRCX)
	w.EmitCmpInt64(RegRAX, RegRCX)
	want := []byte{
		0x48, 0x01, 0xC8, // add rax, rcx
		0x48, 0x29, 0xC8, // sub rax, rcx
		0x48, 0x39, 0xC8, // cmp rax, rcx
	}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
}

func TestEmit_SetccZeroExtends(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	w.EmitSetcc(RegRAX, CcL)
	want := []byte{
		0x0F, 0x9C, 0xC0, // setl al
		0x0F, 0xB6, 0xC0, // movzx eax, al
	}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
}

func TestEmit_CallRel32(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	// a call at offset 0 back to offset 0 jumps -5 bytes
	w.EmitCallRel32(0)
	want := []byte{0xE8, 0xFB, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
}

func TestEmit_JumpFixups(t *testing.T) {
	buf := make([]byte, 64)
	w := newTestWriter(buf)
	label := w.ReserveLabel()
	w.EmitJcc(CcE, label) // 6 bytes, displacement at offset 2
	w.EmitPushImm32(1)    // 5 bytes
	w.MarkLabel(label)    // label at offset 11
	w.ResolveFixups()
	// displacement = target - (site + 4) = 11 - 6 = 5
	want := []byte{
		0x0F, 0x84, 0x05, 0x00, 0x00, 0x00,
		0x68, 0x01, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(emitted(w, buf), want) {
		t.Fatalf("got % x, want % x", emitted(w, buf), want)
	}
}
