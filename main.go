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
/*
	jitcalc — a tiny expression language with an x86-64 JIT behind a REPL

	expressions:  1 + 2        f = . + 1       f.41
	              if c t f     (grouping)      a < b
*/
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/docker/go-units"
	"github.com/launix-de/jitcalc/calc"
	"github.com/xyproto/env/v2"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "jitcalc:", r)
			os.Exit(1)
		}
	}()

	arenaSize, err := units.RAMInBytes(env.Str("JITCALC_ARENA", "1MiB"))
	if err != nil {
		panic("invalid JITCALC_ARENA: " + err.Error())
	}
	m := calc.NewMachine(int(arenaSize))

	if readline.DefaultIsTerminal() {
		fmt.Printf("jitcalc (%s backend)\ntype an expression, e.g.  f = . + 1\n", calc.Backend)
		m.Repl(env.Str("JITCALC_HISTORY", ".jitcalc-history.tmp"))
		return
	}
	m.Run(os.Stdin, os.Stdout)
}
