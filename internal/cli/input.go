package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/samples"
)

type input struct {
	name   string
	data   []byte
	syntax jayson.Syntax
}

// read loads a document from a built-in sample, stdin ("-") or a file. An
// explicit --syntax overrides the file extension.
func (a *app) read(arg, sample string, kind samples.Kind) (input, error) {
	switch {
	case sample != "":
		b, err := samples.Get(kind, sample)
		if err != nil {
			return input{}, err
		}
		return input{name: "sample:" + sample, data: b, syntax: jayson.SyntaxJSON}, nil
	case arg == "-":
		b, err := io.ReadAll(a.in)
		if err != nil {
			return input{}, fmt.Errorf("reading stdin: %w", err)
		}
		return input{name: "stdin", data: b, syntax: a.forcedSyntax(jayson.SyntaxJSON)}, nil
	case arg != "":
		b, err := os.ReadFile(arg)
		if err != nil {
			return input{}, err
		}
		return input{name: arg, data: b, syntax: a.forcedSyntax(jayson.SyntaxForPath(arg))}, nil
	}
	return input{}, errors.New("missing input: pass a file, - for stdin, or a sample name")
}

func (a *app) forcedSyntax(def jayson.Syntax) jayson.Syntax {
	if a.syntax == "" {
		return def
	}
	s, err := jayson.ParseSyntax(a.syntax)
	if err != nil {
		return def
	}
	return s
}

func (a *app) parseOpt(in input) jayson.ParseOpt {
	// cfg passed Check in setup.
	popt, _ := a.cfg.ParseOpt()
	popt.Syntax = in.syntax
	return popt
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
