// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

type metadata struct {
	config  *configuration.Configuration
	numeric bool
	verbose bool
	scripts *script.Cache
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avlctl"
	app.Usage = "run operation scripts against an AVL tree store"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " order keys by numeric value",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute scripts in order against one store",
			ArgsUsage: "SCRIPT...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "statistics, s",
					Usage: " print store statistics as JSON when finished",
				},
			},
			Action: runRun,
		},
		{
			Name:      "watch",
			Usage:     "execute a script each time it changes",
			ArgsUsage: "SCRIPT",
			Action:    runWatch,
		},
		{
			Name:   "version",
			Usage:  "display avlctl version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		theConfiguration, err := readConfiguration(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
			fmt.Fprintf(e, "log directory: %q\n", theConfiguration.Logging.Directory)
		}

		// start logging
		if err = logger.Initialise(theConfiguration.Logging); nil != err {
			return err
		}
		if err = fault.Initialise(); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  theConfiguration,
			numeric: c.GlobalBool("numeric") || theConfiguration.Store.Numeric,
			verbose: verbose,
			scripts: script.NewCache(),
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

// configuration file if given, otherwise defaults with logs in the
// temporary directory
func readConfiguration(fileName string) (*configuration.Configuration, error) {
	if "" != fileName {
		return configuration.GetConfiguration(fileName)
	}

	dataDirectory := filepath.Join(os.TempDir(), "avlctl")
	if err := os.MkdirAll(dataDirectory, 0o700); nil != err {
		return nil, err
	}
	return configuration.Default(dataDirectory)
}
