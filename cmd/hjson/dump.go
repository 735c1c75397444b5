package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/encode"
	"github.com/signadot/hjson-format/go-hjson/format"
	"github.com/signadot/hjson-format/go-hjson/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	return dumpFiles(cfg, cc.Out, args)
}

func dumpFiles(cfg *DumpConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := dumpFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
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
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	v, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	if cfg.outFormat() == format.YAMLFormat {
		d, err := yaml.Marshal(v.Interface())
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
