package casepool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/blackstar-game/blackstar/internal/caserecord"
)

// SupportedSchemaMajor is the case-pack schema major version this build
// understands. Packs with a different major are skipped, not failed.
const SupportedSchemaMajor = "v1"

// Source supplies raw, not-yet-validated case records.
type Source interface {
	// Name identifies the source in log messages.
	Name() string

	// Load returns every raw record the source holds. A missing or
	// unreadable source returns an error; the provider treats that as an
	// empty contribution, never as fatal.
	Load() ([]caserecord.CaseRecord, error)
}

// pack is the on-disk shape of a case file: a schema version plus records.
type pack struct {
	SchemaVersion string                  `json:"schema_version"`
	Cases         []caserecord.CaseRecord `json:"cases"`
}

// DirSource loads case packs from every .json file in a directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a source reading case packs from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Name() string { return s.dir }

func (s *DirSource) Load() ([]caserecord.CaseRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read case directory: %w", err)
	}

	var records []caserecord.CaseRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		recs, err := LoadPack(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping case pack %s: %v\n", path, err)
			continue
		}
		records = append(records, recs...)
	}
	return records, nil
}

// LoadPack parses one case-pack file and checks its schema version.
func LoadPack(path string) ([]caserecord.CaseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if p.SchemaVersion == "" {
		return nil, fmt.Errorf("missing schema_version")
	}
	v := "v" + strings.TrimPrefix(p.SchemaVersion, "v")
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("schema_version %q is not a valid semantic version", p.SchemaVersion)
	}
	if semver.Major(v) != SupportedSchemaMajor {
		return nil, fmt.Errorf("schema_version %s is not compatible with %s.x", p.SchemaVersion, SupportedSchemaMajor)
	}

	return p.Cases, nil
}

// WriteSchemaVersion is the schema_version stamped on packs this build writes.
const WriteSchemaVersion = "1.0.0"

// WritePack writes records to path as a case-pack file that DirSource can
// load back.
func WritePack(path string, records []caserecord.CaseRecord) error {
	data, err := json.MarshalIndent(pack{
		SchemaVersion: WriteSchemaVersion,
		Cases:         records,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode case pack: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write case pack: %w", err)
	}
	return nil
}

// DefaultCaseDir returns the case-pack directory: BLACKSTAR_CASES if set,
// otherwise the XDG data path. The directory is created so drafted packs
// always have somewhere to land.
func DefaultCaseDir() (string, error) {
	if p := os.Getenv("BLACKSTAR_CASES"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "blackstar", "cases")
	return p, os.MkdirAll(p, 0o755)
}

// StaticSource serves a fixed slice of records. Used in tests and for
// programmatically drafted cases that have not been written to disk yet.
type StaticSource struct {
	SourceName string
	Records    []caserecord.CaseRecord
}

func (s *StaticSource) Name() string { return s.SourceName }

func (s *StaticSource) Load() ([]caserecord.CaseRecord, error) {
	return s.Records, nil
}
