// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/store"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := []string(c.Args())
	if 0 == len(files) {
		return fault.ErrInvalidArgumentCount
	}

	s, err := runScripts(m, files)
	if nil != err {
		return err
	}

	if c.Bool("statistics") {
		return printJson(m.w, s.Statistics())
	}
	return nil
}

// execute each file in turn against a single store
func runScripts(m *metadata, files []string) (*store.Store[string, string], error) {

	s := newStore(m)
	runner := script.NewRunner(s, m.w)
	runner.SetCache(m.scripts)

	for _, fileName := range files {
		if m.verbose {
			fmt.Fprintf(m.e, "run: %s\n", fileName)
		}
		if err := runner.RunFile(fileName); nil != err {
			return s, fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return s, nil
}

// a store configured from the metadata
func newStore(m *metadata) *store.Store[string, string] {
	s := store.New[string, string](m.config.Store.Name, script.Comparison(m.numeric))
	s.SetPoolLimit(m.config.Store.PoolLimit)
	return s
}
