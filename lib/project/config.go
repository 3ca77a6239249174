package project

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/vyPal/langscan/lib/report"
	"github.com/vyPal/langscan/util"
	"gopkg.in/yaml.v3"
)

const FileName = "langscan.yaml"

var ErrNoSources = errors.New("no source files matched")

type Config struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Requires    string       `yaml:"requires,omitempty"`
	Sources     []string     `yaml:"sources"`
	Output      string       `yaml:"output,omitempty"`
	Revision    string       `yaml:"revision,omitempty"`
	Cache       bool         `yaml:"cache,omitempty"`
	Report      ReportConfig `yaml:"report"`

	// directory the config was loaded from; source globs are relative to it
	dir string
}

type ReportConfig struct {
	Tokens  bool `yaml:"tokens"`
	Symbols bool `yaml:"symbols"`
	Errors  bool `yaml:"errors"`
	JSON    bool `yaml:"json,omitempty"`
}

func (r ReportConfig) Options() report.Options {
	return report.Options{
		Tokens:  r.Tokens,
		Symbols: r.Symbols,
		Errors:  r.Errors,
	}
}

func (c *Config) CreateDefault(name string) {
	if name == "" || name == "." {
		name = "NewProject"
	}
	c.Name = name
	c.Description = "Lexical checks for a new project"
	c.Sources = []string{"tests/*.lang"}
	c.Report = ReportConfig{
		Tokens:  true,
		Symbols: true,
		Errors:  true,
	}
}

// Save writes the config to path. An existing file is only replaced when
// overwrite is set or the user confirms.
func (c *Config) Save(path string, overwrite bool) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		if !overwrite && !util.PromptYN(path+" already exists. Overwrite?", false) {
			return false, nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, yml, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads langscan.yaml from dir. Report sections default to on when
// the report block is absent.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	conf := &Config{
		Report: ReportConfig{
			Tokens:  true,
			Symbols: true,
			Errors:  true,
		},
		dir: filepath.Dir(path),
	}
	if err := yaml.NewDecoder(file).Decode(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// CheckVersion reports whether version satisfies the config's requires
// constraint. An empty constraint accepts every version.
func (c *Config) CheckVersion(version string) (bool, error) {
	if c.Requires == "" {
		return true, nil
	}
	v, err := util.ParseSemver(version)
	if err != nil {
		return false, err
	}
	return v.Satisfies(c.Requires)
}

// Files expands the source globs relative to the config's directory.
func (c *Config) Files() ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range c.Sources {
		if !filepath.IsAbs(pattern) && c.dir != "" {
			pattern = filepath.Join(c.dir, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	sort.Strings(files)
	return files, nil
}
