package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"alias-resolver/internal/alias"
	"alias-resolver/internal/analyze"
	"alias-resolver/internal/diagnostic"
	"alias-resolver/internal/model"
	"alias-resolver/internal/modelfile"
)

var errNoModel = errors.New("no model configured: pass --model or --package, or set model.files in " +
	"alias-resolver.yaml")

// loadedModel is the merged model of all configured sources.
type loadedModel struct {
	bundle *modelfile.Bundle
	diags  *diagnostic.Diagnostics
	links  alias.Finder
}

// loadModel reads Go packages first, then model files on top of them. When
// the model has error diagnostics, the returned model is non-nil so callers
// can report them.
func (a *app) loadModel() (*loadedModel, error) {
	if !a.cfg.HasModel() {
		return nil, errNoModel
	}

	graph := model.NewGraph()

	if len(a.cfg.Model.Packages) > 0 {
		var err error

		graph, err = analyze.NewAnalyzer(a.logger).LoadPackages(a.cfg.Model.Packages...)
		if err != nil {
			return nil, err
		}
	}

	bundle, diags, err := modelfile.NewLoader(a.logger).LoadInto(graph, a.cfg.Model.Files...)
	if bundle == nil {
		return nil, err
	}

	lm := &loadedModel{bundle: bundle, diags: diags}
	if err != nil {
		return lm, err
	}

	if a.cfg.Cache.Enabled {
		lm.links = alias.NewCache(bundle.Graph, alias.WithLogger(a.logger))
	} else {
		lm.links = alias.NewRegistry(bundle.Graph)
	}

	a.logger.Debug("model ready",
		zap.Int("types", bundle.Graph.Len()),
		zap.Int("elements", len(bundle.Elements)),
	)

	return lm, nil
}

// typeRef resolves a type name given on the command line.
func (lm *loadedModel) typeRef(name string) (model.TypeRef, error) {
	if ref, ok := lm.bundle.Graph.Find(name); ok {
		return ref, nil
	}

	return "", fmt.Errorf("unknown annotation type %q%s", name,
		suggestion(name, lm.bundle.Graph.Candidates()))
}

func (lm *loadedModel) element(name string) (modelfile.Element, error) {
	if e, ok := lm.bundle.Element(name); ok {
		return e, nil
	}

	names := make([]string, 0, len(lm.bundle.Elements))
	for _, e := range lm.bundle.Elements {
		names = append(names, e.Name)
	}

	return modelfile.Element{}, fmt.Errorf("unknown element %q%s", name, suggestion(name, names))
}
