// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 1 != len(c.Args()) {
		return fault.ErrInvalidArgumentCount
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	stop := make(chan struct{})
	go func() {
		sig := <-signals
		fmt.Fprintf(m.e, "received signal: %v\n", sig)
		close(stop)
	}()

	return watchScript(m, c.Args().First(), stop)
}

// run the script, then again on each change until the file is removed
// or stop is closed
func watchScript(m *metadata, fileName string, stop <-chan struct{}) error {

	log := logger.New(FileWatcherLoggerPrefix)

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, log, channel)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	runOnce := func() {
		s := newStore(m)
		runner := script.NewRunner(s, m.w)
		runner.SetCache(m.scripts)
		err := runner.RunFile(watcher.FilePath())
		if nil != err {
			log.Errorf("script error: %s", err)
			fmt.Fprintf(m.e, "error: %s\n", err)
			return
		}
		if m.verbose {
			fmt.Fprintf(m.e, "finished: %d items\n", s.Len())
		}
	}

	runOnce()
	for {
		select {
		case <-channel.change:
			runOnce()
		case <-channel.remove:
			return fault.ErrScriptFileNotFound
		case <-stop:
			log.Info("stopped")
			return nil
		}
	}
}
