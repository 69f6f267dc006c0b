package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/fenilsonani/diskscout/pkg/sizefmt"
)

// scanOld finds files whose modification time predates the cutoff
// captured at scan start. The displayed age is computed from the clock
// at evaluation time, truncated to whole days, so it can read one day
// past the literal cutoff window. Results keep walk order.
func scanOld(ctx context.Context, root string, f filters) ([]Finding, int64, error) {
	var findings []Finding
	var total int64

	err := walk(ctx, root, func(rec FileRecord) {
		if !rec.ModTime.Before(f.cutoff) {
			return
		}

		ageDays := int(time.Since(rec.ModTime) / (24 * time.Hour))
		findings = append(findings, Finding{
			Path:   rec.Path,
			SizeMB: sizefmt.ToMB(rec.Size),
			Reason: fmt.Sprintf("Not modified in %d days", ageDays),
		})
		total += rec.Size
	})
	if err != nil {
		return nil, 0, err
	}

	return findings, total, nil
}
