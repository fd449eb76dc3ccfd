package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"relcheck/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrPackageLoad reports that the requested packages could not be type-checked.
var ErrPackageLoad = errors.New("failed to load packages")

// Analyzer loads Go packages and builds a declaration universe from their structs.
type Analyzer struct {
	// Dir is the directory package patterns are resolved in; empty means the working directory.
	Dir string

	universe *model.Universe
	pending  []pendingStruct
}

// pendingStruct is a declaration registered in the first pass whose members
// are filled in by the second.
type pendingStruct struct {
	decl *model.Declaration
	node *ast.StructType
	pkg  *packages.Package
}

// NewAnalyzer creates a new Analyzer with the marker and collection builtins registered.
func NewAnalyzer() *Analyzer {
	u := model.NewUniverse()
	u.AddBuiltin(EntityMarker, OneToManyMarker, ManyToOneMarker, SliceType, MapType)

	return &Analyzer{universe: u}
}

// LoadPackages loads the specified packages and adds their exported structs to the universe.
// Patterns are standard Go package patterns (e.g., "./testdata/blog", "example.com/shop/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*model.Universe, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrPackageLoad, errors.Join(errs...))
	}

	// Declarations first so properties and constructors can refer across packages.
	for _, pkg := range pkgs {
		if err := a.declarePackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	for _, ps := range a.pending {
		if err := a.addFields(ps); err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", ps.decl.QualifiedName, err)
		}
	}

	for _, pkg := range pkgs {
		if err := a.addFuncs(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	a.pending = nil

	return a.universe, nil
}

// Universe returns the universe built so far.
func (a *Analyzer) Universe() *model.Universe {
	return a.universe
}

// declarePackage registers every exported struct type of pkg.
func (a *Analyzer) declarePackage(pkg *packages.Package) error {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				st, ok := ts.Type.(*ast.StructType)
				if !ok || !ts.Name.IsExported() {
					continue
				}

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				doc := ts.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}

				anns, err := parseDirectives(doc, pkg.Fset)
				if err != nil {
					return err
				}

				decl := &model.Declaration{
					Name:          obj.Name(),
					QualifiedName: qualifiedName(obj),
					Params:        ts.TypeParams.NumFields(),
					Annotations:   anns,
					Pos:           position(pkg.Fset, ts.Name.Pos()),
				}

				if err := a.universe.Add(decl); err != nil {
					return err
				}

				a.pending = append(a.pending, pendingStruct{decl: decl, node: st, pkg: pkg})
			}
		}
	}

	return nil
}

// addFields turns named struct fields into field properties. Embedded fields are skipped.
func (a *Analyzer) addFields(ps pendingStruct) error {
	fset := ps.pkg.Fset

	for _, field := range ps.node.Fields.List {
		if len(field.Names) == 0 {
			continue
		}

		anns, err := parseDirectives(field.Doc, fset)
		if err != nil {
			return err
		}

		if field.Tag != nil {
			ann, err := parseTag(strings.Trim(field.Tag.Value, "`"), position(fset, field.Tag.Pos()))
			if err != nil {
				return fmt.Errorf("%s: %w", fset.Position(field.Tag.Pos()), err)
			}
			if ann != nil {
				anns = append(anns, ann)
			}
		}

		ref := typeRef(ps.pkg.TypesInfo.TypeOf(field.Type))

		for _, name := range field.Names {
			ps.decl.AddProperty(&model.Property{
				Name:        name.Name,
				Kind:        model.PropertyField,
				Type:        ref,
				Annotations: anns,
				Pos:         position(fset, name.Pos()),
			})
		}
	}

	return nil
}

// addFuncs attaches accessor methods and NewT constructors to loaded declarations.
func (a *Analyzer) addFuncs(pkg *packages.Package) error {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok {
				continue
			}

			fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}

			sig := fn.Type().(*types.Signature)

			var err error
			if sig.Recv() != nil {
				err = a.addAccessor(pkg, fd, sig)
			} else {
				a.addConstructor(fd, sig)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}

// addAccessor records a method with no parameters and a single result as an accessor.
func (a *Analyzer) addAccessor(pkg *packages.Package, fd *ast.FuncDecl, sig *types.Signature) error {
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return nil
	}

	decl := a.declarationOf(sig.Recv().Type())
	if decl == nil {
		return nil
	}

	anns, err := parseDirectives(fd.Doc, pkg.Fset)
	if err != nil {
		return err
	}

	decl.AddProperty(&model.Property{
		Name:        fd.Name.Name,
		Kind:        model.PropertyAccessor,
		Type:        typeRef(sig.Results().At(0).Type()),
		Annotations: anns,
		Pos:         position(pkg.Fset, fd.Name.Pos()),
	})

	return nil
}

// addConstructor records NewT as a constructor of T when its first result is T or *T.
func (a *Analyzer) addConstructor(fd *ast.FuncDecl, sig *types.Signature) {
	target, ok := strings.CutPrefix(fd.Name.Name, "New")
	if !ok || target == "" || sig.Results().Len() == 0 {
		return
	}

	decl := a.declarationOf(sig.Results().At(0).Type())
	if decl == nil || decl.Name != target {
		return
	}

	ctor := model.Constructor{}
	for i := range sig.Params().Len() {
		ctor.Params = append(ctor.Params, typeRef(sig.Params().At(i).Type()))
	}

	decl.Constructors = append(decl.Constructors, ctor)
}

// declarationOf returns the loaded declaration behind t or *t.
func (a *Analyzer) declarationOf(t types.Type) *model.Declaration {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}

	decl, _ := a.universe.Lookup(qualifiedName(named.Obj()))

	return decl
}

// typeRef converts a go/types type into the model's type reference.
// Pointers are transparent; slices and arrays become collections of their element.
func typeRef(t types.Type) *model.TypeRef {
	switch tt := types.Unalias(t).(type) {
	case *types.Pointer:
		return typeRef(tt.Elem())

	case *types.Slice:
		return model.NewTypeRef(SliceType, typeRef(tt.Elem()))

	case *types.Array:
		return model.NewTypeRef(SliceType, typeRef(tt.Elem()))

	case *types.Map:
		return model.NewTypeRef(MapType, typeRef(tt.Key()), typeRef(tt.Elem()))

	case *types.Named:
		ref := model.NewTypeRef(qualifiedName(tt.Obj()))
		if targs := tt.TypeArgs(); targs != nil {
			for i := range targs.Len() {
				ref.Args = append(ref.Args, typeRef(targs.At(i)))
			}
		}

		return ref

	case *types.Basic:
		return model.NewTypeRef(tt.Name())

	default:
		return model.NewTypeRef(types.TypeString(t, nil))
	}
}

// qualifiedName is "import/path.Name", or just the name for universe-scope types.
func qualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}
