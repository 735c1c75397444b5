package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		if err := checkFile(cfg, cc.Out, file); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d documents failed", bad, len(args))
	}
	return nil
}

func checkFile(cfg *CheckConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	in, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	if _, err := parse.Parse(in, cfg.parseOpts()...); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: ok\n", file)
	return nil
}
