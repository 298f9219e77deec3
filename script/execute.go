// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/store"
)

// Runner - executes commands against a store, writing results to w
type Runner struct {
	store   *store.Store[string, string]
	w       io.Writer
	log     *logger.L
	scripts *Cache
}

// NewRunner - create a runner
func NewRunner(s *store.Store[string, string], w io.Writer) *Runner {
	return &Runner{
		store: s,
		w:     w,
		log:   logger.New("script"),
	}
}

// SetCache - share parsed script files between runners
func (r *Runner) SetCache(scripts *Cache) {
	r.scripts = scripts
}

// RunFile - parse and execute a script file
func (r *Runner) RunFile(fileName string) error {
	if nil != r.scripts {
		commands, cached, err := r.scripts.Load(fileName)
		if nil != err {
			r.log.Errorf("load: %q  error: %s", fileName, err)
			return err
		}
		r.log.Infof("run: %q  cached: %t", fileName, cached)
		return r.Execute(commands)
	}

	f, err := os.Open(fileName)
	if os.IsNotExist(err) {
		return fault.ErrScriptFileNotFound
	}
	if nil != err {
		return err
	}
	defer f.Close()

	r.log.Infof("run: %q", fileName)
	return r.Run(f)
}

// Run - parse and execute; nothing is executed if any line is bad
func (r *Runner) Run(rd io.Reader) error {
	commands, err := Parse(rd)
	if nil != err {
		r.log.Errorf("parse error: %s", err)
		return err
	}
	return r.Execute(commands)
}

// Execute - run commands in order, stopping at the first failure
func (r *Runner) Execute(commands []Command) error {
	for _, command := range commands {
		if err := r.execute(command); nil != err {
			r.log.Errorf("line: %d  error: %s", command.Line, err)
			return &Error{Line: command.Line, Err: err}
		}
	}
	r.log.Debugf("executed: %d commands", len(commands))
	return nil
}

func (r *Runner) execute(command Command) error {
	switch command.Op {

	case Insert:
		r.store.Put(command.Key, command.Value)

	case Remove:
		r.store.Delete(command.Key)

	case Find:
		value, err := r.store.Get(command.Key)
		if fault.IsErrNotFound(err) {
			fmt.Fprintf(r.w, "%s not found\n", command.Key)
		} else if nil == err {
			fmt.Fprintf(r.w, "%s → %s\n", command.Key, value)
		} else {
			return err
		}

	case Get:
		value, err := r.store.Get(command.Key)
		if nil != err {
			return err
		}
		fmt.Fprintf(r.w, "%s\n", value)

	case List:
		r.store.Walk(func(key string, value string) bool {
			fmt.Fprintf(r.w, "%s → %s\n", key, value)
			return true
		})

	case Count:
		fmt.Fprintf(r.w, "%d\n", r.store.Len())

	case Clear:
		r.store.Clear()

	case Check:
		if err := r.store.Check(); nil != err {
			return err
		}
		fmt.Fprintf(r.w, "check: ok\n")

	case Print:
		r.store.Dump(r.w)

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}
