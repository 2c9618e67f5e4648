// Command metagen reads a runtime metadata file and emits a Go source file
// of typed call-argument structs, one per extrinsic, so callers get
// compile-time checked call construction instead of hand-assembling
// transaction.RawCall.ArgsScale by hand. It is the idiomatic-Go analogue of
// a proc-macro-driven code generator: a go:generate-friendly CLI rather
// than a build-time compiler plugin.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/dotscale/substrate-go/pkg/metadata"
)

func main() {
	metadataPath := flag.String("metadata", "", "path to a hex or raw metadata file")
	pkgName := flag.String("package", "calls", "package name for the generated file")
	outPath := flag.String("out", "", "output file path; stdout if empty")
	flag.Parse()

	if *metadataPath == "" {
		fmt.Fprintln(os.Stderr, "metagen: -metadata is required")
		os.Exit(1)
	}

	if err := run(*metadataPath, *pkgName, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "metagen:", err)
		os.Exit(1)
	}
}

func run(metadataPath, pkgName, outPath string) error {
	raw, err := os.ReadFile(metadataPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", metadataPath, err)
	}

	v, err := metadata.ParseHex(strings.TrimSpace(string(raw)))
	if err != nil {
		v, err = metadata.ParseRaw(raw)
	}
	if err != nil {
		return fmt.Errorf("parsing metadata: %w", err)
	}

	m, err := v.IntoLatest()
	if err != nil {
		return fmt.Errorf("converting metadata: %w", err)
	}

	src, err := generate(pkgName, m.ModulesExtrinsics())
	if err != nil {
		return err
	}

	formatted, err := imports.Process(outPath, src, nil)
	if err != nil {
		// imports.Process needs a real syntax tree; fall back to gofmt so a
		// generation bug still produces something readable to debug, rather
		// than silently emitting unformatted source.
		if gf, gfErr := format.Source(src); gfErr == nil {
			formatted = gf
		} else {
			return fmt.Errorf("formatting generated source: %w", err)
		}
	}

	if outPath == "" {
		_, err = os.Stdout.Write(formatted)
		return err
	}
	return os.WriteFile(outPath, formatted, 0o644)
}

const fileTemplate = `// Code generated by cmd/metagen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/dotscale/substrate-go/pkg/primitives"
	"github.com/dotscale/substrate-go/pkg/scale"
)

{{range .Calls}}
// {{.StructName}} is the {{.ModuleName}}.{{.ExtrinsicName}} call (module {{.ModuleID}}, dispatch {{.DispatchID}}).
type {{.StructName}} struct {
{{range .Fields}}	{{.GoName}} {{.GoType}}
{{end}}}

func (c {{.StructName}}) EncodeScale(w *scale.Writer) {
	w.WriteByte({{.ModuleID}})
	w.WriteByte({{.DispatchID}})
{{range .Fields}}	{{.Encode "c" "w"}}
{{end}}}

func (c *{{.StructName}}) DecodeScale(r *scale.Reader) {
	_ = r.ReadByte()
	_ = r.ReadByte()
{{range .Fields}}	{{.Decode "c" "r"}}
{{end}}}
{{end}}
`

type genField struct {
	GoName string
	GoType string
	rust   string
}

func (f genField) Encode(recv, w string) string {
	switch f.GoType {
	case "uint32":
		return fmt.Sprintf("%s.WriteCompactUint(uint64(%s.%s))", w, recv, f.GoName)
	case "uint64":
		return fmt.Sprintf("%s.WriteCompactUint(%s.%s)", w, recv, f.GoName)
	case "bool":
		return fmt.Sprintf("%s.WriteBool(%s.%s)", w, recv, f.GoName)
	case "primitives.AccountID":
		return fmt.Sprintf("%s.%s.EncodeScale(%s)", recv, f.GoName, w)
	case "primitives.Balance":
		return fmt.Sprintf("%s.%s.EncodeScale(%s)", recv, f.GoName, w)
	default: // []byte
		return fmt.Sprintf("%s.WriteCompactBytes(%s.%s)", w, recv, f.GoName)
	}
}

func (f genField) Decode(recv, r string) string {
	switch f.GoType {
	case "uint32":
		return fmt.Sprintf("%s.%s = uint32(%s.ReadCompactUint())", recv, f.GoName, r)
	case "uint64":
		return fmt.Sprintf("%s.%s = %s.ReadCompactUint()", recv, f.GoName, r)
	case "bool":
		return fmt.Sprintf("%s.%s = %s.ReadBool()", recv, f.GoName, r)
	case "primitives.AccountID":
		return fmt.Sprintf("%s.%s.DecodeScale(%s)", recv, f.GoName, r)
	case "primitives.Balance":
		return fmt.Sprintf("%s.%s = primitives.NewBalanceFromBig(%s.ReadCompactBigInt())", recv, f.GoName, r)
	default: // []byte
		return fmt.Sprintf("%s.%s = %s.ReadCompactBytes()", recv, f.GoName, r)
	}
}

type genCall struct {
	StructName    string
	ModuleName    string
	ExtrinsicName string
	ModuleID      int
	DispatchID    int
	Fields        []genField
}

// goType maps a Substrate Rust argument type string to the Go type this
// generator emits for it, falling back to an opaque []byte when the type
// is anything this small heuristic table doesn't recognize — a typed
// struct with one unparsed field is still strictly more useful than no
// struct at all.
func goType(rust string) string {
	t := strings.TrimSpace(rust)
	t = strings.TrimPrefix(t, "Compact<")
	t = strings.TrimSuffix(t, ">")
	switch t {
	case "u8", "u16", "u32":
		return "uint32"
	case "u64":
		return "uint64"
	case "bool":
		return "bool"
	case "AccountId", "T::AccountId":
		return "primitives.AccountID"
	case "Balance", "BalanceOf", "T::Balance":
		return "primitives.Balance"
	default:
		return "[]byte"
	}
}

func exportedName(s string) string {
	if s == "" {
		return s
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func generate(pkgName string, calls []metadata.ExtrinsicInfo) ([]byte, error) {
	sort.Slice(calls, func(i, j int) bool {
		if calls[i].ModuleID != calls[j].ModuleID {
			return calls[i].ModuleID < calls[j].ModuleID
		}
		return calls[i].DispatchID < calls[j].DispatchID
	})

	data := struct {
		Package string
		Calls   []genCall
	}{Package: pkgName}

	for _, call := range calls {
		gc := genCall{
			StructName:    exportedName(call.ModuleName) + exportedName(call.ExtrinsicName),
			ModuleName:    call.ModuleName,
			ExtrinsicName: call.ExtrinsicName,
			ModuleID:      call.ModuleID,
			DispatchID:    call.DispatchID,
		}
		for _, arg := range call.Args {
			gc.Fields = append(gc.Fields, genField{
				GoName: exportedName(arg.Name),
				GoType: goType(arg.Type),
				rust:   arg.Type,
			})
		}
		data.Calls = append(data.Calls, gc)
	}

	tmpl, err := template.New("metagen").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return []byte(buf.String()), nil
}
