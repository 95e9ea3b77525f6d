// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"math"
	"sort"
)

const sszPkgPath = "github.com/sszkit/ssz"

type genContext struct {
	pkg     *types.Package
	imports map[string]string
}

func newGenContext(pkg *types.Package) *genContext {
	return &genContext{
		pkg:     pkg,
		imports: make(map[string]string),
	}
}

// qualifier is a types.Qualifier that tracks the imports of the generated file.
func (ctx *genContext) qualifier(pkg *types.Package) string {
	if pkg.Path() == ctx.pkg.Path() {
		return ""
	}
	ctx.addImport(pkg.Path(), "")
	return pkg.Name()
}

func (ctx *genContext) addImport(path string, alias string) error {
	if path == ctx.pkg.Path() {
		return nil
	}
	if n, ok := ctx.imports[path]; ok && n != alias {
		return fmt.Errorf("conflict import %s(alias: %s-%s)", path, n, alias)
	}
	ctx.imports[path] = alias
	return nil
}

func (ctx *genContext) header() []byte {
	var paths sort.StringSlice
	for path := range ctx.imports {
		paths = append(paths, path)
	}
	sort.Sort(paths)

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by github.com/sszkit/ssz/cmd/sszgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", ctx.pkg.Name())
	if len(paths) == 0 {
		return b.Bytes()
	}
	fmt.Fprintf(&b, "import (\n")
	for _, path := range paths {
		alias := ctx.imports[path]
		if alias == "" {
			fmt.Fprintf(&b, "\"%s\"\n", path)
		} else {
			fmt.Fprintf(&b, "%s \"%s\"\n", alias, path)
		}
	}
	fmt.Fprintf(&b, ")\n")
	return b.Bytes()
}

func generateSchema(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var b bytes.Buffer

	// Add a needed import of the ssz package
	if err := ctx.addImport(sszPkgPath, ""); err != nil {
		return nil, err
	}
	var (
		name      = typ.named.Obj().Name()
		indexRule = fmt.Sprintf("%%%dd", int(math.Ceil(math.Log10(float64(len(typ.fields)+1)))))
	)
	fmt.Fprintf(&b, "// %sSchema defines the ssz field table of %s.\n", name, name)
	fmt.Fprintf(&b, "var %sSchema = ssz.Define(%q, func(b *ssz.Builder[%s]) {\n", name, name, name)
	for i, field := range typ.fields {
		if field.desc == "" {
			return nil, fmt.Errorf("field %s.%s has no type descriptor", name, field.name)
		}
		goType := types.TypeString(field.typ, ctx.qualifier)
		fmt.Fprintf(&b, "ssz.%s(b, %q, %q, func(obj *%s) *%s { return &obj.%s }) // Field ("+indexRule+") - %s\n",
			field.define, field.wire, field.desc, name, goType, field.name, i, field.name)
	}
	fmt.Fprint(&b, "})\n")
	return b.Bytes(), nil
}

func generateRegistration(ctx *genContext, conts []*sszContainer) []byte {
	var b bytes.Buffer

	fmt.Fprint(&b, "// RegisterSchemas adds the schemas of all the generated records to a registry.\n")
	fmt.Fprint(&b, "func RegisterSchemas(r *ssz.Registry) error {\n")
	for _, cont := range conts {
		name := cont.named.Obj().Name()
		fmt.Fprintf(&b, "if err := r.Register(%q, %sSchema); err != nil {\n", name, name)
		fmt.Fprint(&b, "return err\n")
		fmt.Fprint(&b, "}\n")
	}
	fmt.Fprint(&b, "return nil\n")
	fmt.Fprint(&b, "}\n")
	return b.Bytes()
}

func generate(ctx *genContext, conts []*sszContainer) ([]byte, error) {
	if len(conts) == 0 {
		return nil, fmt.Errorf("no types to generate schemas for")
	}
	var codes [][]byte
	for _, cont := range conts {
		code, err := generateSchema(ctx, cont)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	codes = append(codes, generateRegistration(ctx, conts))

	code := append(ctx.header(), '\n')
	code = append(code, bytes.Join(codes, []byte("\n"))...)
	return format.Source(code)
}
