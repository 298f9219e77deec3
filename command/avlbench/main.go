// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "check-every", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "rate", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
		{Long: "prometheus", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	theConfiguration, err := readConfiguration(options["config-file"])
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration  error: %s", program, err)
	}

	if err := applyOptions(&theConfiguration.Bench, options); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if verbose {
		fmt.Fprintf(os.Stderr, "count: %d  seed: %d  key range: %d  check every: %d  rate: %d\n",
			theConfiguration.Bench.Count,
			theConfiguration.Bench.Seed,
			theConfiguration.Bench.KeyRange,
			theConfiguration.Bench.CheckEvery,
			theConfiguration.Bench.Rate,
		)
	}

	result, err := churn(theConfiguration, log)
	if len(options["memory-stats"]) > 0 {
		result.Memory = memstats(log)
	}

	if len(options["prometheus"]) > 0 {
		if metricsErr := writeMetrics(os.Stdout, result); nil != metricsErr {
			exitwithstatus.Message("%s: metrics error: %s", program, metricsErr)
		}
	} else {
		b, jsonErr := json.MarshalIndent(result, "", "  ")
		if nil != jsonErr {
			exitwithstatus.Message("%s: JSON error: %s", program, jsonErr)
		}
		fmt.Printf("%s\n", b)
	}

	if nil != err {
		log.Criticalf("churn failed: %s", err)
		exitwithstatus.Message("%s: failed: %s", program, err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [options]\n", program)
	fmt.Printf("  --help             -h      this message\n")
	fmt.Printf("  --version          -V      show version\n")
	fmt.Printf("  --verbose          -v      debug logging and run details\n")
	fmt.Printf("  --config-file=FILE -c FILE Lua configuration file\n")
	fmt.Printf("  --count=N          -n N    number of operations\n")
	fmt.Printf("  --seed=S           -s S    random seed, 0 for time based\n")
	fmt.Printf("  --check-every=N    -e N    run tree diagnostics every N operations, 0 to disable\n")
	fmt.Printf("  --rate=N           -r N    at most N operations per second, 0 for unlimited\n")
	fmt.Printf("  --memory-stats     -m      include memory statistics\n")
	fmt.Printf("  --prometheus       -p      print Prometheus text format instead of JSON\n")
}

// configuration file if given, otherwise defaults with logs in the
// temporary directory
func readConfiguration(files []string) (*configuration.Configuration, error) {
	if 1 == len(files) {
		return configuration.GetConfiguration(files[0])
	}

	dataDirectory := filepath.Join(os.TempDir(), "avlbench")
	if err := os.MkdirAll(dataDirectory, 0o700); nil != err {
		return nil, err
	}
	return configuration.Default(dataDirectory)
}

// command line values override the configuration file
func applyOptions(bench *configuration.BenchType, options map[string][]string) error {

	if n := options["count"]; len(n) > 0 {
		count, err := strconv.Atoi(n[len(n)-1])
		if nil != err {
			return err
		}
		if count <= 0 {
			return fault.ErrInvalidCount
		}
		bench.Count = count
	}

	if s := options["seed"]; len(s) > 0 {
		seed, err := strconv.ParseInt(s[len(s)-1], 10, 64)
		if nil != err {
			return err
		}
		bench.Seed = seed
	}

	if e := options["check-every"]; len(e) > 0 {
		every, err := strconv.Atoi(e[len(e)-1])
		if nil != err {
			return err
		}
		if every < 0 {
			return fault.ErrInvalidCount
		}
		bench.CheckEvery = every
	}

	if r := options["rate"]; len(r) > 0 {
		perSecond, err := strconv.Atoi(r[len(r)-1])
		if nil != err {
			return err
		}
		if perSecond < 0 {
			return fault.ErrInvalidCount
		}
		bench.Rate = perSecond
	}

	if 0 == bench.Seed {
		bench.Seed = time.Now().UnixNano()
	}
	return nil
}
