package gosrc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
	"github.com/wippyai/recordgen/source"
)

// Directive marks a struct for code generation.
const Directive = "//recordgen:derive"

// ParseFile parses a single Go file. src follows go/parser.ParseFile: when
// nil the file is read from filename. With no names, every struct carrying
// the derive directive is selected.
func ParseFile(filename string, src any, names ...string) (*source.Result, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "parse "+filename)
	}
	return collect(fset, []*ast.File{f}, names)
}

// ParseDir parses the non-test, non-generated Go files of one directory.
func ParseDir(dir string, names ...string) (*source.Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindNotFound, err, "read "+dir)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "parse "+name)
		}
		if ast.IsGenerated(f) {
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, errors.NotFound(errors.PhaseParse, "go files in", dir)
	}
	return collect(fset, files, names)
}

type decl struct {
	spec   *ast.TypeSpec
	facets gen.Facet
	marked bool
	file   *ast.File
}

func collect(fset *token.FileSet, files []*ast.File, names []string) (*source.Result, error) {
	res := &source.Result{Package: files[0].Name.Name, Imports: make(map[string]string)}

	var list errors.List
	var decls []decl
	for _, f := range files {
		if f.Name.Name != res.Package {
			return nil, errors.InvalidInput(errors.PhaseParse,
				"files declare packages "+res.Package+" and "+f.Name.Name)
		}
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				facets, marked, err := directive(doc)
				if err != nil {
					list.Add(errors.New(errors.PhaseParse, errors.KindInvalidInput).
						Record(ts.Name.Name).
						Cause(err).
						Detail("bad %s directive", Directive).
						Build())
					continue
				}
				decls = append(decls, decl{spec: ts, facets: facets, marked: marked, file: f})
			}
		}
	}

	selected, err := selectDecls(decls, names)
	if err != nil {
		return nil, err
	}

	for _, d := range selected {
		rec, err := recordFromSpec(d.spec)
		if err != nil {
			addAll(&list, err)
			continue
		}
		Logger().Debug("selected record",
			zap.String("record", rec.Name),
			zap.String("pos", fset.Position(d.spec.Pos()).String()),
			zap.Stringer("facets", d.facets))
		res.Targets = append(res.Targets, gen.Target{Record: rec, Facets: d.facets})
		if err := resolveImports(res.Imports, rec, d.file); err != nil {
			addAll(&list, err)
		}
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// directive reports whether doc carries the derive directive and which
// facets it names.
func directive(doc *ast.CommentGroup) (gen.Facet, bool, error) {
	if doc == nil {
		return 0, false, nil
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		facets, err := gen.ParseFacets(rest)
		return facets, true, err
	}
	return 0, false, nil
}

func selectDecls(decls []decl, names []string) ([]decl, error) {
	if len(names) == 0 {
		var out []decl
		for _, d := range decls {
			if d.marked {
				out = append(out, d)
			}
		}
		return out, nil
	}

	byName := make(map[string]decl, len(decls))
	for _, d := range decls {
		byName[d.spec.Name.Name] = d
	}
	var list errors.List
	out := make([]decl, 0, len(names))
	for _, n := range names {
		d, ok := byName[n]
		if !ok {
			list.Add(errors.NotFound(errors.PhaseParse, "type", n))
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].spec.Pos() < out[j].spec.Pos() })
	return out, list.Err()
}

// recordFromSpec converts a struct declaration, collecting every field
// problem before returning.
func recordFromSpec(ts *ast.TypeSpec) (*schema.Record, error) {
	name := ts.Name.Name
	if ts.Assign.IsValid() {
		return nil, errors.NotStruct(name, "a type alias")
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, errors.NotStruct(name, "a generic type")
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, errors.NotStruct(name, describe(ts.Type))
	}

	rec := &schema.Record{Name: name}
	var list errors.List
	index := 0
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			list.Add(errors.UnnamedField(name, index, types.ExprString(field.Type)))
			index++
			continue
		}
		typ, err := fieldType(name, field.Names[0].Name, field.Type)
		for _, ident := range field.Names {
			if err != nil {
				break
			}
			if ident.Name == "_" {
				list.Add(errors.UnnamedField(name, index, types.ExprString(field.Type)))
			} else {
				rec.Fields = append(rec.Fields, schema.Field{Name: ident.Name, Type: typ})
			}
			index++
		}
		list.Add(err)
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func fieldType(record, field string, expr ast.Expr) (schema.Type, *errors.Error) {
	if at, ok := expr.(*ast.ArrayType); ok {
		if at.Len == nil {
			return nil, errors.UnsupportedField(record, field, types.ExprString(expr), "slices have no fixed length")
		}
		n, err := arrayLen(record, field, at.Len)
		if err != nil {
			return nil, err
		}
		if _, nested := unparen(at.Elt).(*ast.ArrayType); nested {
			return nil, errors.UnsupportedField(record, field, types.ExprString(expr), "nested arrays are not supported")
		}
		elem, err := scalarType(record, field, at.Elt)
		if err != nil {
			return nil, err
		}
		return schema.Array{Elem: elem, Len: n}, nil
	}
	return scalarType(record, field, expr)
}

func scalarType(record, field string, expr ast.Expr) (schema.Scalar, *errors.Error) {
	switch e := unparen(expr).(type) {
	case *ast.Ident:
		return schema.Scalar{Name: e.Name}, nil
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			return schema.Scalar{Name: pkg.Name + "." + e.Sel.Name}, nil
		}
	case *ast.IndexExpr, *ast.IndexListExpr:
		return schema.Scalar{}, errors.UnsupportedField(record, field, types.ExprString(expr), "generic instantiations are not supported")
	}
	return schema.Scalar{}, errors.UnsupportedField(record, field, types.ExprString(expr), describe(expr)+" fields are not supported")
}

// arrayLen accepts integer literals only. Constants would need type
// checking to resolve.
func arrayLen(record, field string, expr ast.Expr) (int, *errors.Error) {
	lit, ok := unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, errors.BadArrayLength(record, field, types.ExprString(expr))
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil || n < 0 || n > maxArrayLen {
		return 0, errors.BadArrayLength(record, field, lit.Value)
	}
	return int(n), nil
}

// Larger arrays would not fit a record anyone decodes field by field.
const maxArrayLen = 1 << 24

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}

func describe(expr ast.Expr) string {
	switch unparen(expr).(type) {
	case *ast.StructType:
		return "inline struct"
	case *ast.StarExpr:
		return "pointer"
	case *ast.MapType:
		return "map"
	case *ast.ChanType:
		return "channel"
	case *ast.FuncType:
		return "func"
	case *ast.InterfaceType:
		return "interface"
	case *ast.ArrayType:
		return "array"
	case *ast.Ident, *ast.SelectorExpr:
		return "named type " + types.ExprString(expr)
	}
	return types.ExprString(expr)
}

// resolveImports records the import path of every package qualifier rec
// uses, as declared in file. A qualifier that another file of the package
// binds to a different path is an error: the generated file can import only
// one of them.
func resolveImports(dst map[string]string, rec *schema.Record, file *ast.File) *errors.Error {
	for _, s := range schema.NamedTypes(rec) {
		q, _, ok := strings.Cut(s.String(), ".")
		if !ok {
			continue
		}
		p, found := importFor(file, q)
		if !found {
			return errors.NotFound(errors.PhaseParse, "import for qualifier", q)
		}
		if prev, seen := dst[q]; seen && prev != p {
			return errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Record(rec.Name).
				Detail("qualifier %s is imported as both %q and %q", q, prev, p).
				Build()
		}
		dst[q] = p
	}
	return nil
}

func importFor(file *ast.File, qualifier string) (string, bool) {
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := assumedName(p)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == qualifier {
			return p, true
		}
	}
	return "", false
}

// assumedName guesses the package name of an unaliased import the way
// goimports does: a trailing /vN major version is skipped, a go- prefix is
// dropped and the name ends at the first non-identifier rune, so
// gopkg.in/yaml.v3 is yaml and github.com/goccy/go-json is json.
func assumedName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}); i >= 0 {
		base = base[:i]
	}
	return base
}

func addAll(list *errors.List, err error) {
	var l *errors.List
	if errors.As(err, &l) {
		list.Errors = append(list.Errors, l.Errors...)
		return
	}
	var e *errors.Error
	if errors.As(err, &e) {
		list.Add(e)
	}
}
