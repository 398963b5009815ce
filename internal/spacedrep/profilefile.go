package spacedrep

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ProfileFormatMajor is the profile file format major version this build reads.
const ProfileFormatMajor = "v1"

//go:embed profile.schema.json
var profileSchemaJSON []byte

var (
	profileSchemaOnce sync.Once
	profileSchema     *jsonschema.Schema
	profileSchemaErr  error
)

type profileFile struct {
	Version     string             `yaml:"version"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Stages      []profileFileStage `yaml:"stages"`
}

type profileFileStage struct {
	Stage string `yaml:"stage"`
	Delay int    `yaml:"delay"`
	Gap   []int  `yaml:"gap"`
}

// LoadProfileFile reads and validates a YAML profile definition.
func LoadProfileFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// ParseProfile decodes a YAML profile document. The document must satisfy
// the embedded JSON schema, carry a v1 semver version, and define each of
// the seven stages exactly once.
func ParseProfile(data []byte) (Profile, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Profile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateProfileDoc(doc); err != nil {
		return Profile{}, err
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	if !semver.IsValid(pf.Version) {
		return Profile{}, fmt.Errorf("profile version %q is not valid semver", pf.Version)
	}
	if major := semver.Major(pf.Version); major != ProfileFormatMajor {
		return Profile{}, fmt.Errorf("profile version %s: unsupported major %s (want %s)", pf.Version, major, ProfileFormatMajor)
	}

	p := Profile{Name: strings.TrimSpace(pf.Name)}
	seen := make(map[Stage]bool, StageCount)
	for _, fs := range pf.Stages {
		s, err := ParseStage(fs.Stage)
		if err != nil {
			return Profile{}, err
		}
		if seen[s] {
			return Profile{}, fmt.Errorf("stage %s defined twice", s)
		}
		seen[s] = true
		p.Stages[s.Index()] = Recurrence{Delay: fs.Delay, Gap: CyclicGap(fs.Gap...)}
	}
	return p, nil
}

// LoadProfileDir registers every *.yaml and *.yml profile found in dir.
// It returns the names it registered.
func LoadProfileDir(r *Registry, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadProfileFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return names, err
		}
		if err := r.Register(p); err != nil {
			return names, err
		}
		names = append(names, p.Name)
	}
	return names, nil
}

func validateProfileDoc(doc any) error {
	schema, err := compiledProfileSchema()
	if err != nil {
		return fmt.Errorf("compile profile schema: %w", err)
	}

	// The validator expects JSON-shaped values; round-trip the YAML tree.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("profile is not representable as JSON: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("reparse profile: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("profile schema validation failed: %w", err)
	}
	return nil
}

func compiledProfileSchema() (*jsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(profileSchemaJSON, &def); err != nil {
			profileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://profile.json"
		if err := c.AddResource(url, def); err != nil {
			profileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		profileSchema, profileSchemaErr = c.Compile(url)
	})
	return profileSchema, profileSchemaErr
}
