// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// sszgen generates ssz schema definitions for Go struct types.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"golang.org/x/tools/go/packages"
)

var log = logrus.WithField("prefix", "sszgen")

var (
	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory of the Go package to generate schemas for",
		Value: ".",
	}
	typeFlag = &cli.StringSliceFlag{
		Name:  "type",
		Usage: "Struct types to generate schemas for (defaults to every exported struct)",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file to write the generated code into (defaults to stdout)",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info, warn, error)",
		Value: "info",
	}
)

func main() {
	app := cli.App{
		Name:   "sszgen",
		Usage:  "generates ssz schema definitions for Go structs",
		Flags:  []cli.Flag{dirFlag, typeFlag, outputFlag, verbosityFlag},
		Action: run,
		Before: func(ctx *cli.Context) error {
			level, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)

			formatter := new(prefixed.TextFormatter)
			formatter.TimestampFormat = "2006-01-02 15:04:05"
			formatter.FullTimestamp = true
			logrus.SetFormatter(formatter)
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	dir := ctx.String(dirFlag.Name)

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("failed to load package in %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	if len(pkgs[0].Errors) > 0 {
		return fmt.Errorf("package errors: %v", pkgs[0].Errors)
	}
	pkg := pkgs[0].Types
	log.WithField("package", pkg.Path()).Debug("Loaded source package")

	conts, err := parsePackage(pkg, ctx.StringSlice(typeFlag.Name))
	if err != nil {
		return err
	}
	code, err := generate(newGenContext(pkg), conts)
	if err != nil {
		return err
	}
	out := ctx.String(outputFlag.Name)
	if out == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"output": out, "types": len(conts)}).Info("Generated ssz schemas")
	return nil
}
