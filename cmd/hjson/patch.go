package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/encode"
	"github.com/signadot/hjson-format/go-hjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", cfg.PatchFile, err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("bad patch %q: %w", cfg.PatchFile, err)
	}
	if len(args) == 0 {
		return patchReader(cfg, p, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := patchFile(cfg, p, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func patchFile(cfg *PatchConfig, p jsonpatch.Patch, w io.Writer, file string) error {
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
	if err := patchReader(cfg, p, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// patchReader decodes a document, applies the patch through the JSON
// bridge, and re-parses the result (JSON is a subset of the input
// syntax) for encoding in the output format.
func patchReader(cfg *PatchConfig, p jsonpatch.Patch, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	v, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	doc, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	pv, err := parse.Parse(patched)
	if err != nil {
		return fmt.Errorf("error reparsing patched document: %w", err)
	}
	return encode.Encode(pv, w, cfg.encOpts(w)...)
}
