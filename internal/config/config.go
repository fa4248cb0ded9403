package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tvrename/internal/errors"
	"tvrename/pkg/types"
)

// Log formats accepted by --log-format
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Options holds the raw input of one run, as given on the command line
// or in a defaults file. An empty Ext means "detect it".
type Options struct {
	Path      string   `yaml:"path"`
	Name      string   `yaml:"name"`
	Ext       string   `yaml:"ext"`
	Season    int      `yaml:"season"`
	Sort      int      `yaml:"sort"`   // 1 = ascending, anything else = descending
	Rename    int      `yaml:"rename"` // 0 = dry run, anything else = apply
	Exclude   []string `yaml:"exclude"`
	TitleCase bool     `yaml:"title_case"`
	Verbose   bool     `yaml:"verbose"`
	LogFormat string   `yaml:"log_format"`
}

// Run is the resolved, read-only context every pipeline stage works from.
// Ext is final: it is either what the user asked for or what detection
// found, and may be empty when nothing was found.
type Run struct {
	Dir      string
	Name     string
	Ext      string
	Detected bool
	Season   int
	Sort     types.SortDirection
	DryRun   bool
	Exclude  []string
}

// Defaults returns the options used when neither a flag nor the defaults
// file says otherwise.
func Defaults() Options {
	return Options{
		Season:    1,
		Sort:      1,
		Rename:    0,
		LogFormat: LogFormatText,
	}
}

// fileOptions mirrors Options with pointers so that zero values written in
// the file (season: 0, sort: 0) are told apart from absent keys.
type fileOptions struct {
	Path      *string  `yaml:"path"`
	Name      *string  `yaml:"name"`
	Ext       *string  `yaml:"ext"`
	Season    *int     `yaml:"season"`
	Sort      *int     `yaml:"sort"`
	Rename    *int     `yaml:"rename"`
	Exclude   []string `yaml:"exclude"`
	TitleCase *bool    `yaml:"title_case"`
	Verbose   *bool    `yaml:"verbose"`
	LogFormat *string  `yaml:"log_format"`
}

// LoadConfigFile reads a YAML defaults file on top of Defaults().
// If the file doesn't exist, the defaults are returned unchanged.
func LoadConfigFile(path string) (Options, error) {
	opts := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.NewConfigError("error reading config file", path, errors.InvalidConfig, err)
	}

	var f fileOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	setString(&opts.Path, f.Path)
	setString(&opts.Name, f.Name)
	setString(&opts.Ext, f.Ext)
	setString(&opts.LogFormat, f.LogFormat)
	setInt(&opts.Season, f.Season)
	setInt(&opts.Sort, f.Sort)
	setInt(&opts.Rename, f.Rename)
	if f.TitleCase != nil {
		opts.TitleCase = *f.TitleCase
	}
	if f.Verbose != nil {
		opts.Verbose = *f.Verbose
	}
	if len(f.Exclude) > 0 {
		opts.Exclude = f.Exclude
	}
	return opts, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the options before any filesystem work is done.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Path) == "" {
		return errors.NewConfigError("invalid configuration", "path", errors.InvalidConfig, fmt.Errorf("path is required"))
	}
	if strings.TrimSpace(o.Name) == "" {
		return errors.NewConfigError("invalid configuration", "name", errors.InvalidConfig, fmt.Errorf("name is required"))
	}
	if strings.ContainsRune(o.Name, os.PathSeparator) {
		return errors.NewConfigError("invalid configuration", "name", errors.InvalidConfig, fmt.Errorf("name must not contain %q", os.PathSeparator))
	}
	if strings.ContainsRune(o.Ext, os.PathSeparator) {
		return errors.NewConfigError("invalid configuration", "ext", errors.InvalidConfig, fmt.Errorf("ext must not contain %q", os.PathSeparator))
	}
	if o.Season < 0 {
		return errors.NewConfigError("invalid configuration", "season", errors.InvalidConfig, fmt.Errorf("season must be >= 0, got %d", o.Season))
	}
	switch o.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.NewConfigError("invalid configuration", "log-format", errors.InvalidConfig, fmt.Errorf("use %q or %q, got %q", LogFormatText, LogFormatJSON, o.LogFormat))
	}
	for _, pattern := range o.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid configuration", "exclude", errors.InvalidConfig, fmt.Errorf("bad pattern %q: %w", pattern, err))
		}
	}
	return nil
}

// NormalizeExt strips surrounding blanks and one leading dot, so that
// "mp4" and ".mp4" select the same files.
func NormalizeExt(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

// Resolve produces the run context. detect is only called when no
// extension was given, and its answer becomes the run's extension.
func (o Options) Resolve(detect func() string) Run {
	run := Run{
		Dir:     o.Path,
		Name:    strings.TrimSpace(o.Name),
		Ext:     NormalizeExt(o.Ext),
		Season:  o.Season,
		Sort:    types.SortDirectionFromMode(o.Sort),
		DryRun:  o.Rename == 0,
		Exclude: o.Exclude,
	}
	if o.TitleCase {
		run.Name = cases.Title(language.English).String(run.Name)
	}
	if run.Ext == "" && detect != nil {
		run.Ext = detect()
		run.Detected = true
	}
	return run
}
