package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bem "github.com/reoring/bem"
	"github.com/reoring/bem/codec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "render":
		renderCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "bem CLI\n\nUsage:\n  bem render -block NAME [-elem NAME] [-mod NAME]... [-esep SEP] [-msep SEP]\n  bem render -f doc.yaml|doc.json [-format yaml|json] [-esep SEP] [-msep SEP]\n\nNotes:\n  - With -f, the document's block/element/modifier/elements/mods drive the output.\n  - Repeated -mod flags fan out modified variants alongside the base class.")
}

// stringsFlag collects repeated flag values in order.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }
func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var block, elem, file, format, esep, msep string
	var mods stringsFlag
	fs.StringVar(&block, "block", "", "block name")
	fs.StringVar(&elem, "elem", "", "element name")
	fs.Var(&mods, "mod", "modifier name (repeatable)")
	fs.StringVar(&file, "f", "", "render a JSON/YAML class document instead of flags")
	fs.StringVar(&format, "format", "", "document format: json or yaml (default: by extension)")
	fs.StringVar(&esep, "esep", "", "element separator (default \"__\")")
	fs.StringVar(&msep, "msep", "", "modifier separator (default \"--\")")
	_ = fs.Parse(args)

	dialect := bem.Configure(bem.Options{ElementSeparator: esep, ModifierSeparator: msep})

	if file != "" {
		renderDocument(file, format, dialect)
		return
	}
	if block == "" {
		fs.Usage()
		os.Exit(2)
	}

	var parts []bem.Part
	if elem != "" {
		parts = append(parts, bem.S(elem))
	}
	cn := dialect.New(block, parts...)
	var out bem.Class = cn
	if len(mods) > 0 {
		in := make([]bem.Mod, 0, len(mods))
		for _, m := range mods {
			in = append(in, bem.S(m))
		}
		out = cn.WithMod(in...)
	}
	fmt.Println(out)
}

func renderDocument(file, format string, dialect bem.Dialect) {
	data, err := os.ReadFile(file)
	if err != nil {
		fail(err)
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".json":
			format = "json"
		default:
			format = "yaml"
		}
	}
	var doc codec.Document
	switch format {
	case "json":
		doc, err = codec.DocumentFromJSON(data)
	case "yaml", "yml":
		doc, err = codec.DocumentFromYAML(data)
	default:
		fail(fmt.Errorf("unknown format %q", format))
	}
	if err != nil {
		fail(err)
	}
	out, err := doc.Build(dialect)
	if err != nil {
		fail(err)
	}
	fmt.Println(out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "bem:", err)
	os.Exit(1)
}
