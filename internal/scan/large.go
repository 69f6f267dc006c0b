package scan

import (
	"context"
	"sort"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

const reasonLargeFile = "Large file"

// scanLarge finds files at or above the size threshold, optionally
// restricted to an extension set. Results are ordered largest first;
// ties keep walk order.
func scanLarge(ctx context.Context, root string, f filters) ([]Finding, int64, error) {
	var findings []Finding
	var total int64

	err := walk(ctx, root, func(rec FileRecord) {
		if rec.Size < f.minBytes {
			return
		}
		if !f.matchExt(rec.Path) {
			return
		}

		findings = append(findings, Finding{
			Path:   rec.Path,
			SizeMB: sizefmt.ToMB(rec.Size),
			Reason: reasonLargeFile,
		})
		total += rec.Size
	})
	if err != nil {
		return nil, 0, err
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].SizeMB > findings[j].SizeMB
	})

	return findings, total, nil
}
