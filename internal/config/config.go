// Package config holds runtime configuration: defaults, the optional TOML
// config file overlay, and validation shared by all commands.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DateFormat is the accepted layout for user-supplied dates (--after, epoch).
const DateFormat = "2006-01-02"

// DefaultEpoch is the start of the weekly photo schedule: Wednesday,
// November 6, 2024. Week 1 covers the seven days starting on this date.
func DefaultEpoch() time.Time {
	return time.Date(2024, time.November, 6, 0, 0, 0, 0, time.Local)
}

// DefaultImportExtensions is the set of extensions the import command treats
// as photos. Organize only ever moves the JPEG/RAW categories; the remaining
// image types are copied into week folders and left in place.
var DefaultImportExtensions = []string{
	".jpg", ".jpeg", ".cr3", ".raw", ".png", ".tif", ".tiff",
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a TOML file by [LoadFile], and then mutated by
// cobra flag bindings before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Paths (set from positional args).
	TargetDir string // organize / check target directory.
	SourceDir string // import source (e.g. SD card mount).
	DestDir   string // import destination root; defaults to the working directory.

	// Organize settings.
	Prefix string // Optional rename prefix ("trip" -> trip-0001.jpg).
	DryRun bool

	// Import settings.
	Weekly        bool      // Keep only files dated on the epoch's weekday.
	After         time.Time // Inclusive lower bound on file date.
	AfterSet      bool
	OrganizeAfter bool // Run organize on each week folder after copying.

	// Week schedule.
	Epoch time.Time // Week 1 start date. Default: [DefaultEpoch].

	// Extension set recognized by import (lowercase, with leading dot).
	ImportExtensions []string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (append).
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before the config file overlay and CLI flags.
func DefaultConfig() Config {
	return Config{
		Epoch:            DefaultEpoch(),
		ImportExtensions: append([]string(nil), DefaultImportExtensions...),
		ColorMode:        ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParseDate parses a user-supplied YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// ValidatePrefix rejects prefixes that would escape the category directory or
// produce hidden/unusable filenames. An empty prefix is valid (no renaming).
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if strings.ContainsAny(prefix, `/\`) || strings.ContainsRune(prefix, 0) {
		return fmt.Errorf("invalid prefix %q (must not contain path separators)", prefix)
	}
	if strings.HasPrefix(prefix, ".") {
		return fmt.Errorf("invalid prefix %q (must not start with a dot)", prefix)
	}
	return nil
}

// Validate checks cross-field consistency after flags and the config file
// have been applied. Path existence is checked later, per command.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := ValidatePrefix(c.Prefix); err != nil {
		return err
	}

	if c.Epoch.IsZero() {
		return errors.New("epoch date must be set")
	}

	if len(c.ImportExtensions) == 0 {
		return errors.New("import extension list must not be empty")
	}
	for i, ext := range c.ImportExtensions {
		e := strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(e, ".") || len(e) < 2 {
			return fmt.Errorf("invalid import extension %q (use lowercase with leading dot, e.g. .jpg)", ext)
		}
		c.ImportExtensions[i] = e
	}
	return nil
}

// ImportExtensionSet returns the import extensions as a lookup set.
func (c *Config) ImportExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.ImportExtensions))
	for _, ext := range c.ImportExtensions {
		set[ext] = true
	}
	return set
}
