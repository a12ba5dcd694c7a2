package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	skemapath "github.com/reoring/skemapath"
	"github.com/reoring/skemapath/dsl"
	"github.com/reoring/skemapath/i18n"
	"github.com/reoring/skemapath/openapi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "paths":
		pathsCmd(os.Args[2:])
	case "defaults":
		defaultsCmd(os.Args[2:])
	case "checks":
		checksCmd(os.Args[2:])
	case "field":
		fieldCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "skemapath CLI\n\nUsage:\n  skemapath paths -schema file.{json,yaml} [-filter string|number|bool|time|any[?]] [-optional] [-nullable] [-loose] [-discriminator key=value]\n  skemapath defaults -schema file.{json,yaml} [-discriminator key=value] [-empty-strings]\n  skemapath checks -schema file.{json,yaml} -path a.b.0.c [-discriminator key=value] [-lang en|ja]\n  skemapath field -schema file.{json,yaml} -path a.b.0.c [-discriminator key=value]\n  skemapath export -schema file.{json,yaml}\n\nNotes:\n  - -schema accepts JSON or YAML descriptors; pass \"-\" to read stdin.\n  - Append ? to a -filter type to also match optional values.")
}

func pathsCmd(args []string) {
	fs := flag.NewFlagSet("paths", flag.ExitOnError)
	var schemaFile, filterName, disc string
	var loose, optional, nullable bool
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML, \"-\" for stdin)")
	fs.StringVar(&filterName, "filter", "", "value type filter: string|number|bool|time|any, append ? to include optional")
	fs.BoolVar(&optional, "optional", false, "admit optional values of the filter type")
	fs.BoolVar(&nullable, "nullable", false, "admit nullable values of the filter type")
	fs.BoolVar(&loose, "loose", false, "match any union constituent and descend through optional parents")
	fs.StringVar(&disc, "discriminator", "", "variant selector as key=value")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	n := loadSchema(schemaFile)
	filter, err := filterNode(filterName)
	if err != nil {
		fatalf("%v", err)
	}
	if filter != nil {
		if optional {
			filter = dsl.Optional(filter)
		}
		if nullable {
			filter = dsl.Nullable(filter)
		}
	}
	sel, err := parseSelector(disc)
	if err != nil {
		fatalf("%v", err)
	}
	for _, p := range skemapath.ValidPaths(n, skemapath.ValidPathsOpt{Discriminator: sel, Filter: filter, Loose: loose}) {
		fmt.Println(p)
	}
}

func defaultsCmd(args []string) {
	fs := flag.NewFlagSet("defaults", flag.ExitOnError)
	var schemaFile, disc string
	var emptyStrings bool
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML, \"-\" for stdin)")
	fs.StringVar(&disc, "discriminator", "", "variant selector as key=value")
	fs.BoolVar(&emptyStrings, "empty-strings", false, "fill undefaulted string members with \"\"")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	n := loadSchema(schemaFile)
	sel, err := parseSelector(disc)
	if err != nil {
		fatalf("%v", err)
	}
	vals := skemapath.CollectDefaults(n, skemapath.DefaultsOpt{Discriminator: sel, EmptyStringDefaults: emptyStrings})
	printJSON(vals)
}

func checksCmd(args []string) {
	fs := flag.NewFlagSet("checks", flag.ExitOnError)
	var schemaFile, path, disc, lang string
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML, \"-\" for stdin)")
	fs.StringVar(&path, "path", "", "dot-path to the field")
	fs.StringVar(&disc, "discriminator", "", "variant selector as key=value")
	fs.StringVar(&lang, "lang", "", "description language (en or ja)")
	_ = fs.Parse(args)
	if schemaFile == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}
	node := resolveField(schemaFile, path, disc)
	type checkOut struct {
		skemapath.Check
		Description string `json:"description"`
	}
	out := []checkOut{}
	for _, c := range skemapath.Checks(node) {
		out = append(out, checkOut{Check: c, Description: c.Describe()})
	}
	printJSON(out)
}

func fieldCmd(args []string) {
	fs := flag.NewFlagSet("field", flag.ExitOnError)
	var schemaFile, path, disc string
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML, \"-\" for stdin)")
	fs.StringVar(&path, "path", "", "dot-path to the field")
	fs.StringVar(&disc, "discriminator", "", "variant selector as key=value")
	_ = fs.Parse(args)
	if schemaFile == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}
	node := resolveField(schemaFile, path, disc)
	out := struct {
		Path     string            `json:"path"`
		Kind     string            `json:"kind"`
		Required bool              `json:"required"`
		Default  any               `json:"default,omitempty"`
		Checks   []skemapath.Check `json:"checks,omitempty"`
	}{
		Path:     path,
		Kind:     skemapath.ResolvePrimitive(node).Kind().String(),
		Required: skemapath.RequiresInput(node),
		Checks:   skemapath.Checks(node),
	}
	if dv, ok := skemapath.ExtractDefault(node); ok {
		out.Default = dv
	}
	printJSON(out)
}

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var schemaFile string
	fs.StringVar(&schemaFile, "schema", "", "schema descriptor file (JSON or YAML, \"-\" for stdin)")
	_ = fs.Parse(args)
	if schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}
	n := loadSchema(schemaFile)
	s, err := skemapath.ExportJSONSchema(n)
	if err != nil {
		fatalf("export: %v", err)
	}
	printJSON(s)
}

func resolveField(schemaFile, path, disc string) skemapath.Node {
	n := loadSchema(schemaFile)
	sel, err := parseSelector(disc)
	if err != nil {
		fatalf("%v", err)
	}
	var opts []skemapath.FieldOpt
	if sel != nil {
		opts = append(opts, skemapath.FieldOpt{Discriminator: sel})
	}
	node, ok := skemapath.ExtractField(n, path, opts...)
	if !ok {
		fatalf("path %q does not resolve", path)
	}
	return node
}

func loadSchema(path string) skemapath.Node {
	data, isYAML := readSchemaInput(path)
	var (
		n   skemapath.Node
		d   openapi.Diag
		err error
	)
	if isYAML {
		n, d, err = openapi.ImportYAML(data, openapi.Options{TolerateUnknown: true})
	} else {
		n, d, err = openapi.Import(data, openapi.Options{TolerateUnknown: true})
	}
	if err != nil {
		fatalf("import schema: %v", err)
	}
	if d != nil && d.HasWarnings() {
		for _, w := range d.Warnings() {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}
	return n
}

func readSchemaInput(path string) ([]byte, bool) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return data, true
	case ".json":
		return data, false
	}
	// no extension hint: treat anything not starting with '{' as YAML
	trimmed := strings.TrimSpace(string(data))
	return data, !strings.HasPrefix(trimmed, "{")
}

func filterNode(name string) (skemapath.Node, error) {
	if name == "" {
		return nil, nil
	}
	opt := strings.HasSuffix(name, "?")
	base := strings.TrimSuffix(name, "?")
	var n skemapath.Node
	switch base {
	case "string":
		n = dsl.String()
	case "number":
		n = dsl.Number()
	case "bool", "boolean":
		n = dsl.Bool()
	case "time":
		n = dsl.Time()
	case "any":
		n = dsl.Any()
	default:
		return nil, fmt.Errorf("unknown filter type %q", name)
	}
	if opt {
		n = dsl.Optional(n)
	}
	return n, nil
}

func parseSelector(s string) (*skemapath.Selector, error) {
	if s == "" {
		return nil, nil
	}
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return nil, fmt.Errorf("discriminator must be key=value, got %q", s)
	}
	key, raw := s[:i], s[i+1:]
	var value any = raw
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		value = f
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}
	return &skemapath.Selector{Key: key, Value: value}, nil
}

func printJSON(v any) {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encode output: %v", err)
	}
	fmt.Println(string(b))
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
