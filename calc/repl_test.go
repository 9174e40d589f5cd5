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
	"strings"
	"testing"
)

func runBatch(src string) string {
	m := NewMachine(1 << 20)
	var buf bytes.Buffer
	m.Run(strings.NewReader(src), &buf)
	return buf.String()
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2\n", "3 \n"},
		{"3 - 1 - 1\n", "1 \n"},
		{"(2 + 3) < (1 + 5)\n", "1 \n"},
		{"sq = . + .\nsq.5\n", "0 10 \n"},
		{"fact = if . < 2 1 . - 1\nfact.5\n", "0 4 \n"},
		{"f = . + 1\ng = f.(f..)\ng.10\n", "0 0 12 \n"},
	}
	for _, tt := range tests {
		if got := runBatch(tt.src); got != tt.want {
			t.Errorf("input %q: output %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRun_EmptyInput(t *testing.T) {
	if got := runBatch(""); got != "\n" {
		t.Fatalf("empty input: output %q, want newline", got)
	}
}

func TestRun_StopsAtEmptyForm(t *testing.T) {
	// an empty line parses to Nothing and terminates the loop; the
	// trailing expression is never evaluated
	if got := runBatch("1 + 2\n\n9\n"); got != "3 \n" {
		t.Fatalf("output %q, want %q", got, "3 \n")
	}
}

func TestRun_SemicolonSeparated(t *testing.T) {
	if got := runBatch("1;2;3\n"); got != "1 2 3 \n" {
		t.Fatalf("output %q, want %q", got, "1 2 3 \n")
	}
}
