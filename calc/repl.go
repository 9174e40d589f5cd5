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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgGreen)
	resultColor = color.New(color.FgRed)
)

// Run is the batch driver: parse one expression at a time from r, evaluate
// it and print the result followed by a single space. A Nothing expression
// (end of input or an empty form) terminates the loop with a final newline.
func (m *Machine) Run(r io.Reader, w io.Writer) {
	out := bufio.NewWriter(w)
	defer out.Flush()
	p := NewParser(r)
	for {
		e := p.Parse()
		if e.Kind == ExprNothing {
			break
		}
		fmt.Fprintf(out, "%d ", m.Eval(e, 0))
		out.Flush()
	}
	fmt.Fprintln(out)
}

// Repl runs the interactive readline loop. Evaluation per line matches the
// batch driver; errors stay fatal either way, the readline layer only adds
// history and line editing.
func (m *Machine) Repl(historyFile string) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            promptColor.Sprint("> "),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}
		p := NewParser(strings.NewReader(line + "\n"))
		for {
			e := p.Parse()
			if e.Kind == ExprNothing {
				break
			}
			fmt.Printf("%s%d\n", resultColor.Sprint("= "), m.Eval(e, 0))
		}
	}
}
