package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/encode"
	"github.com/signadot/hjson-format/go-hjson/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
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
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	opts := append(cfg.parseOpts(), parse.WhitespaceAsComments(true))
	v, err := parse.Parse(in, opts...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	encOpts := append(cfg.encOpts(w), encode.EncodeComments(true))
	return encode.Encode(v, w, encOpts...)
}
