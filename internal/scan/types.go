package scan

import "time"

// Mode selects which classification policy a scan applies.
type Mode string

const (
	ModeLargeFiles Mode = "large_files"
	ModeTempFiles  Mode = "temp_files"
	ModeOldFiles   Mode = "old_files"
	ModeDuplicates Mode = "duplicates"
)

// Modes lists every supported scan mode.
var Modes = []Mode{ModeLargeFiles, ModeTempFiles, ModeOldFiles, ModeDuplicates}

// ParseMode validates a mode string supplied by a caller.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLargeFiles, ModeTempFiles, ModeOldFiles, ModeDuplicates:
		return Mode(s), nil
	default:
		return "", newUnknownMode(s)
	}
}

// Params are the raw, caller-facing scan parameters. Zero values mean
// "use the default"; normalization happens once per scan in normalize().
type Params struct {
	MinSizeMB  float64  // minimum size for large_files, in megabytes
	Extensions []string // allowed extensions for large_files; empty = unrestricted
	AgeDays    int      // age window for old_files, in days
	Limit      int      // report truncation bound
}

const (
	DefaultMinSizeMB = 10.0
	DefaultAgeDays   = 180
	DefaultLimit     = 20
)

// DefaultParams returns the documented parameter defaults.
func DefaultParams() Params {
	return Params{
		MinSizeMB: DefaultMinSizeMB,
		AgeDays:   DefaultAgeDays,
		Limit:     DefaultLimit,
	}
}

// FileRecord is one regular file observed during a walk. Paths are
// relative to the scan root. Records live only for the duration of
// a single scan.
type FileRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Finding is one classified file.
type Finding struct {
	Path   string  `json:"path" yaml:"path"`
	SizeMB float64 `json:"size_mb" yaml:"size_mb"`
	Reason string  `json:"reason" yaml:"reason"`
}

// Report is the result of one scan invocation. FilesFound and
// TotalSizeMB always reflect every match; Files is truncated to the
// report limit.
type Report struct {
	Mode        Mode      `json:"scan_type" yaml:"scan_type"`
	Root        string    `json:"path" yaml:"path"`
	FilesFound  int       `json:"files_found" yaml:"files_found"`
	TotalSizeMB float64   `json:"total_size_mb" yaml:"total_size_mb"`
	Files       []Finding `json:"files" yaml:"files"`
	Truncated   bool      `json:"truncated" yaml:"truncated"`
	Note        string    `json:"note" yaml:"note"`
}
