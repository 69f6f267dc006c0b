package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fenilsonani/diskscout/internal/scan"
	"github.com/fenilsonani/diskscout/pkg/sizefmt"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat maps a user-supplied format name to an OutputFormat,
// defaulting to the summary view.
func ParseFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "yaml":
		return FormatYAML
	case "table":
		return FormatTable
	default:
		return FormatSummary
	}
}

// envelope wraps the stable report contract with per-report metadata.
// The scan fields keep their wire names; downstream consumers depend
// on scan_type/path/files_found/total_size_mb/files/note staying put.
type envelope struct {
	ReportID    string `json:"report_id" yaml:"report_id"`
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
	scan.Report `yaml:",inline"`
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report renders a scan report in the reporter's format.
func (r *Reporter) Report(rep *scan.Report) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(rep)
	case FormatJSON:
		return r.reportJSON(rep)
	case FormatYAML:
		return r.reportYAML(rep)
	case FormatSummary:
		return r.reportSummary(rep)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary generates a human-readable summary
func (r *Reporter) reportSummary(rep *scan.Report) error {
	fmt.Fprintf(r.writer, "=== Scan Summary ===\n")
	fmt.Fprintf(r.writer, "Mode: %s\n", rep.Mode)
	fmt.Fprintf(r.writer, "Root: %s\n", rep.Root)
	fmt.Fprintf(r.writer, "Files Found: %d\n", rep.FilesFound)
	fmt.Fprintf(r.writer, "Total Size: %.2f MB\n", rep.TotalSizeMB)

	if len(rep.Files) > 0 {
		fmt.Fprintf(r.writer, "\nFindings:\n")
		for _, f := range rep.Files {
			fmt.Fprintf(r.writer, "  %s (%.2f MB) - %s\n", f.Path, f.SizeMB, f.Reason)
		}
	}

	fmt.Fprintf(r.writer, "\n%s\n", rep.Note)
	return nil
}

// reportTable generates a table report
func (r *Reporter) reportTable(rep *scan.Report) error {
	fmt.Fprintf(r.writer, "%-60s | %-12s | %s\n", "Path", "Size", "Reason")
	fmt.Fprintln(r.writer, divider(110))

	for _, f := range rep.Files {
		path := f.Path
		if len(path) > 60 {
			path = "..." + path[len(path)-57:]
		}

		fmt.Fprintf(r.writer, "%-60s | %-12s | %s\n",
			path,
			fmt.Sprintf("%.2f MB", f.SizeMB),
			f.Reason)
	}

	fmt.Fprintf(r.writer, "\n%s\n", divider(110))
	fmt.Fprintf(r.writer, "Total: %d files, %s. %s\n",
		rep.FilesFound,
		sizefmt.FormatBytes(int64(rep.TotalSizeMB*sizefmt.MB)),
		rep.Note)

	return nil
}

// reportJSON generates a JSON report
func (r *Reporter) reportJSON(rep *scan.Report) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newEnvelope(rep))
}

// reportYAML generates a YAML report
func (r *Reporter) reportYAML(rep *scan.Report) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(newEnvelope(rep))
}

func newEnvelope(rep *scan.Report) envelope {
	return envelope{
		ReportID:  uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Report:    *rep,
	}
}

func divider(n int) string {
	line := make([]byte, n)
	for i := range line {
		line[i] = '-'
	}
	return string(line)
}

// SaveToFile saves the report to a file
func SaveToFile(rep *scan.Report, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(rep)
}
