package modelfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"alias-resolver/internal/diagnostic"
	"alias-resolver/internal/model"
)

// DefaultVersion is assumed when a file has no version field.
const DefaultVersion = "1"

// SupportedVersions is the semver constraint on the version field.
const SupportedVersions = "^1"

// ErrUnsupportedVersion is returned for files outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported model file version")

var versionConstraint = mustConstraint(SupportedVersions)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}

	return constraint
}

// LoadFile loads and parses a YAML model file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path

	return f, nil
}

// Parse validates YAML data against the schema and decodes it into a File.
func Parse(data []byte) (*File, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	applyDefaults(&f)

	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}

	if !versionConstraint.Check(v) {
		return fmt.Errorf("%w %s (want %s)", ErrUnsupportedVersion, version, SupportedVersions)
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}

	return nil
}

// Loader reads several model files into one Bundle.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{logger: logger}
}

// Load reads, builds and validates the given files. The error covers I/O,
// syntax and schema failures and error-level diagnostics; the diagnostics are
// returned in both cases so callers can report warnings.
func (l *Loader) Load(paths ...string) (*Bundle, *diagnostic.Diagnostics, error) {
	return l.LoadInto(model.NewGraph(), paths...)
}

// LoadInto is Load on top of an existing graph.
func (l *Loader) LoadInto(graph *model.Graph, paths ...string) (*Bundle, *diagnostic.Diagnostics, error) {
	files := make([]*File, 0, len(paths))

	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, nil, err
		}

		l.logger.Debug("loaded model file",
			zap.String("path", path),
			zap.String("version", f.Version),
			zap.Int("types", len(f.Types)),
			zap.Int("elements", len(f.Elements)),
		)

		files = append(files, f)
	}

	bundle, diags := BuildInto(graph, files...)
	diags.Merge(*Validate(bundle))

	l.logger.Debug("built model",
		zap.Int("types", bundle.Graph.Len()),
		zap.Int("elements", len(bundle.Elements)),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)),
	)

	if err := diags.Error(); err != nil {
		return bundle, diags, fmt.Errorf("invalid model: %w", err)
	}

	return bundle, diags, nil
}
