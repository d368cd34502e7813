package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"alias-resolver/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds an annotation model from their
// exported struct types.
type Analyzer struct {
	graph  *model.Graph
	logger *zap.Logger
}

// NewAnalyzer creates a new Analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		graph:  model.NewGraph(),
		logger: logger,
	}
}

// LoadPackages loads the specified packages and adds their annotation types to
// the graph. Patterns are standard Go package patterns (e.g.,
// "alias-resolver/annotations/web"). Short names in aliasFor tags are resolved
// once all packages are loaded, so a marker may name a type from any of them.
func (a *Analyzer) LoadPackages(patterns ...string) (*model.Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	a.resolveMarkers()

	return a.graph, nil
}

// Graph returns the current model graph.
func (a *Analyzer) Graph() *model.Graph {
	return a.graph
}

// processPackage adds every exported struct type of pkg to the graph.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	scope := pkg.Types.Scope()
	added := 0

	for _, name := range scope.Names() {
		// Only process exported type names
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		decl, err := a.analyzeStruct(TypeID{PkgPath: pkg.PkgPath, Name: name}, st)
		if err != nil {
			return err
		}

		if err := a.graph.AddType(decl); err != nil {
			return err
		}

		added++
	}

	a.logger.Debug("analyzed package",
		zap.String("package", pkg.PkgPath),
		zap.Int("types", added),
	)

	return nil
}

// analyzeStruct builds the declaration of one annotation type.
func (a *Analyzer) analyzeStruct(id TypeID, st *types.Struct) (*model.TypeDecl, error) {
	ref := model.TypeRef(id.String())
	attrs := make([]*model.AttributeDecl, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		info := FieldInfo{
			Name:     field.Name(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
		}

		if info.Name == "_" {
			if override, ok := info.Tag.Lookup(TagAnnotation); ok && override != "" {
				ref = model.TypeRef(override)
			}

			continue
		}

		// Only exported, named fields are attributes
		if !field.Exported() || info.Embedded {
			continue
		}

		name, ok := info.AttributeName()
		if !ok {
			continue
		}

		marker, _, err := info.AliasMarker()
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", id.Name, info.Name, err)
		}

		attrs = append(attrs, &model.AttributeDecl{Name: name, Marker: marker})
	}

	return model.NewTypeDecl(ref, attrs...), nil
}

// resolveMarkers replaces short annotation names in markers with the
// registered reference. Names that do not resolve are kept as written.
func (a *Analyzer) resolveMarkers() {
	for _, ref := range a.graph.Types() {
		decl, _ := a.graph.ResolveType(ref)

		for _, attr := range decl.Attributes {
			if attr.Marker == nil || attr.Marker.Annotation.IsZero() {
				continue
			}

			if resolved, ok := a.graph.Find(string(attr.Marker.Annotation)); ok {
				attr.Marker.Annotation = resolved
			}
		}
	}
}
