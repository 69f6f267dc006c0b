// Package scan classifies files under a directory tree into categories
// relevant to disk-space reclamation: oversized files, temporary and
// cache files, long-unmodified files, and size-based duplicate
// candidates. Scans are read-only and advisory; nothing is deleted or
// moved.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

// Scan runs one classification policy over the tree rooted at root and
// returns a bounded report. The root must already exist and be a
// directory; alias expansion is the resolver's job, not the engine's.
//
// Each invocation is independent and stateless, so concurrent scans are
// safe. Cancelling ctx aborts the walk between entries and surfaces
// ctx.Err().
func Scan(ctx context.Context, root string, mode Mode, params Params) (*Report, error) {
	f, err := params.normalize(time.Now())
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, newInvalidRoot(root, fmt.Sprintf("cannot resolve path: %v", err))
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, newInvalidRoot(abs, fmt.Sprintf("path %q does not exist", root))
	}
	if !info.IsDir() {
		return nil, newInvalidRoot(abs, fmt.Sprintf("path %q is not a directory", root))
	}

	var findings []Finding
	var totalBytes int64

	switch mode {
	case ModeLargeFiles:
		findings, totalBytes, err = scanLarge(ctx, abs, f)
	case ModeTempFiles:
		findings, totalBytes, err = scanTemp(ctx, abs)
	case ModeOldFiles:
		findings, totalBytes, err = scanOld(ctx, abs, f)
	case ModeDuplicates:
		findings, totalBytes, err = scanDuplicates(ctx, abs)
	default:
		return nil, newUnknownMode(string(mode))
	}
	if err != nil {
		return nil, err
	}

	return buildReport(mode, abs, findings, totalBytes, f.limit), nil
}

// buildReport truncates findings to the report limit while keeping the
// true match count and the byte-accurate total. Raw bytes are summed
// across all matches and rounded once.
func buildReport(mode Mode, root string, findings []Finding, totalBytes int64, limit int) *Report {
	report := &Report{
		Mode:        mode,
		Root:        root,
		FilesFound:  len(findings),
		TotalSizeMB: sizefmt.ToMB(totalBytes),
		Files:       findings,
		Note:        "All files shown",
	}

	if len(findings) > limit {
		report.Files = findings[:limit]
		report.Truncated = true
		report.Note = fmt.Sprintf("Limited to first %d files", limit)
	}

	if report.Files == nil {
		report.Files = []Finding{}
	}

	return report
}
