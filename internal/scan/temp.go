package scan

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

const reasonTempFile = "Temporary file"

// tempExtensions are extensions that mark a file as temporary on their own.
var tempExtensions = map[string]struct{}{
	".tmp":   {},
	".temp":  {},
	".cache": {},
	".log":   {},
	".bak":   {},
}

// tempMarkers flag a file whose name contains any of them, covering
// editor scratch files and build caches like __pycache__.
var tempMarkers = []string{"tmp", "temp", "cache", "__pycache__"}

// isTempName classifies a file name as temporary. No size threshold
// applies to this policy.
func isTempName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := tempExtensions[ext]; ok {
		return true
	}
	if strings.HasSuffix(name, "~") {
		return true
	}

	lower := strings.ToLower(name)
	for _, marker := range tempMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// scanTemp finds temporary and cache files. Results keep walk order.
func scanTemp(ctx context.Context, root string) ([]Finding, int64, error) {
	var findings []Finding
	var total int64

	err := walk(ctx, root, func(rec FileRecord) {
		if !isTempName(filepath.Base(rec.Path)) {
			return
		}

		findings = append(findings, Finding{
			Path:   rec.Path,
			SizeMB: sizefmt.ToMB(rec.Size),
			Reason: reasonTempFile,
		})
		total += rec.Size
	})
	if err != nil {
		return nil, 0, err
	}

	return findings, total, nil
}
