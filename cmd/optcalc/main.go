// SPDX-License-Identifier: MIT

// Command optcalc solves one optimization worksheet and prints the report.
//
// Usage:
//
//	optcalc -sheet problem.yaml [-config optcalc.json] [-json]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvopt/worksheet"
)

type cliOptions struct {
	sheetPath  string
	configPath string
	asJSON     bool
}

func main() {
	logger := log.New(os.Stderr, "optcalc: ", 0)
	opts, err := parseFlags()
	if err != nil {
		logger.Fatal(err)
	}
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.sheetPath, "sheet", "", "YAML or JSON problem sheet")
	flag.StringVar(&opts.configPath, "config", "", "Path to solver config (default: ./"+worksheet.DefaultConfigFile+")")
	flag.BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -sheet FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.sheetPath = strings.TrimSpace(opts.sheetPath)
	opts.configPath = strings.TrimSpace(opts.configPath)
	if opts.sheetPath == "" {
		flag.Usage()
		return opts, errors.New("missing required -sheet file")
	}

	return opts, nil
}

func run(opts cliOptions, out io.Writer, logger *log.Logger) error {
	cfg, err := worksheet.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sheet, err := worksheet.Load(opts.sheetPath)
	if err != nil {
		return fmt.Errorf("load sheet: %w", err)
	}
	rep, err := worksheet.NewRunner(cfg, logger).Run(sheet)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if opts.asJSON {
		return rep.WriteJSON(out)
	}

	return rep.WriteText(out)
}
