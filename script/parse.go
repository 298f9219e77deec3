// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bitmark-inc/avltree/fault"
)

// Opcode - the operation of a command
type Opcode int

// the operations
const (
	Insert Opcode = iota
	Remove Opcode = iota
	Find   Opcode = iota
	Get    Opcode = iota
	List   Opcode = iota
	Count  Opcode = iota
	Clear  Opcode = iota
	Check  Opcode = iota
	Print  Opcode = iota
)

// name and the number of fields after the name, -1 for "one or more
// after the key"
var opcodes = map[string]struct {
	op     Opcode
	fields int
}{
	"insert": {Insert, -1},
	"remove": {Remove, 1},
	"find":   {Find, 1},
	"get":    {Get, 1},
	"list":   {List, 0},
	"count":  {Count, 0},
	"clear":  {Clear, 0},
	"check":  {Check, 0},
	"print":  {Print, 0},
}

// Command - one parsed line
type Command struct {
	Line  int
	Op    Opcode
	Key   string
	Value string
}

// Error - an error with the script line that caused it
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap - the underlying fault
func (e *Error) Unwrap() error {
	return e.Err
}

// Parse - read all commands, stopping at the first bad line
func Parse(r io.Reader) ([]Command, error) {
	commands := make([]Command, 0, 16)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1

		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		command, err := parseLine(lineNumber, line)
		if nil != err {
			return nil, err
		}
		commands = append(commands, command)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return commands, nil
}

func parseLine(lineNumber int, line string) (Command, error) {
	name, rest := cut(line)

	code, ok := opcodes[strings.ToLower(name)]
	if !ok {
		return Command{}, &Error{Line: lineNumber, Err: fault.ErrUnknownCommand}
	}

	command := Command{
		Line: lineNumber,
		Op:   code.op,
	}

	switch code.fields {
	case 0:
		if "" != rest {
			return Command{}, &Error{Line: lineNumber, Err: fault.ErrInvalidArgumentCount}
		}
	case 1:
		key, extra := cut(rest)
		if "" == key || "" != extra {
			return Command{}, &Error{Line: lineNumber, Err: fault.ErrInvalidArgumentCount}
		}
		command.Key = key
	default:
		key, value := cut(rest)
		if "" == key || "" == value {
			return Command{}, &Error{Line: lineNumber, Err: fault.ErrInvalidArgumentCount}
		}
		command.Key = key
		command.Value = value
	}
	return command, nil
}

// split off the first word, the remainder has no leading space
func cut(s string) (string, string) {
	n := strings.IndexFunc(s, unicode.IsSpace)
	if n < 0 {
		return s, ""
	}
	return s[:n], strings.TrimLeftFunc(s[n:], unicode.IsSpace)
}
