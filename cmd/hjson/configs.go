package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hjson-format/go-hjson/encode"
	"github.com/signadot/hjson-format/go-hjson/format"
	"github.com/signadot/hjson-format/go-hjson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	C     bool `cli:"name=c desc='include comments'"`
	Ws    bool `cli:"name=ws desc='keep all whitespace as comments'"`
	Dup   bool `cli:"name=dup desc='fail on duplicate keys'"`

	H bool `cli:"name=h aliases=hjson desc='output hjson'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.H:
		fmat = format.HjsonFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseComments(cfg.C),
		parse.DuplicateKeyException(cfg.Dup),
	}
	if cfg.Ws {
		res = append(res, parse.WhitespaceAsComments(true))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeComments(cfg.C || cfg.Ws),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type PatchConfig struct {
	*MainConfig

	PatchFile string `cli:"name=p desc='patch file (rfc 6902 json)'"`

	Patch *cli.Command
}
