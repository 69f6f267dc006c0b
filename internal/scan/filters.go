package scan

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

// filters is the canonical internal form of scan parameters. It is
// built once at scan start; the cutoff instant is captured here so a
// long-running scan stays self-consistent.
type filters struct {
	minBytes int64
	exts     map[string]struct{} // nil = no extension restriction
	cutoff   time.Time
	limit    int
}

// normalize validates raw parameters and converts them to canonical
// form. Zero-valued fields fall back to the documented defaults.
func (p Params) normalize(now time.Time) (filters, error) {
	f := filters{}

	minSize := p.MinSizeMB
	if minSize == 0 {
		minSize = DefaultMinSizeMB
	}
	if minSize < 0 {
		return f, newInvalidParameter("min_size_mb", "must be a non-negative number")
	}
	f.minBytes = int64(minSize * sizefmt.MB)

	ageDays := p.AgeDays
	if ageDays == 0 {
		ageDays = DefaultAgeDays
	}
	if ageDays < 0 {
		return f, newInvalidParameter("age_days", "must be a positive number of days")
	}
	f.cutoff = now.Add(-time.Duration(ageDays) * 24 * time.Hour)

	limit := p.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		return f, newInvalidParameter("limit", "must be a positive count")
	}
	f.limit = limit

	if exts := NormalizeExtensions(p.Extensions); len(exts) > 0 {
		f.exts = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			f.exts[ext] = struct{}{}
		}
	}

	return f, nil
}

// matchExt reports whether a path's extension passes the filter set.
// An empty set matches everything.
func (f filters) matchExt(path string) bool {
	if f.exts == nil {
		return true
	}
	_, ok := f.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// NormalizeExtensions canonicalizes an extension list: tokens are
// trimmed, lower-cased, and dot-prefixed; empty tokens are dropped.
// An empty result means "no restriction".
func NormalizeExtensions(raw []string) []string {
	var exts []string
	for _, e := range raw {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

// SplitExtensions splits a comma-separated extension string into raw
// tokens for NormalizeExtensions.
func SplitExtensions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
