package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fenilsonani/diskscout/internal/scan"
	"gopkg.in/yaml.v3"
)

func sampleReport() *scan.Report {
	return &scan.Report{
		Mode:        scan.ModeLargeFiles,
		Root:        "/data",
		FilesFound:  2,
		TotalSizeMB: 7.25,
		Files: []scan.Finding{
			{Path: "sub/huge.iso", SizeMB: 4.25, Reason: "Large file"},
			{Path: "big.zip", SizeMB: 3.0, Reason: "Large file"},
		},
		Note: "All files shown",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"table", FormatTable},
		{"summary", FormatSummary},
		{"", FormatSummary},
		{"bogus", FormatSummary},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReportJSONContract(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Report(sampleReport()); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// These field names are the stable contract external callers parse
	for _, field := range []string{"scan_type", "path", "files_found", "total_size_mb", "files", "note", "truncated"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("JSON output missing contract field %q", field)
		}
	}
	for _, field := range []string{"report_id", "timestamp"} {
		if v, ok := decoded[field].(string); !ok || v == "" {
			t.Errorf("JSON output missing metadata field %q", field)
		}
	}

	if decoded["scan_type"] != "large_files" {
		t.Errorf("scan_type = %v", decoded["scan_type"])
	}
	if decoded["files_found"].(float64) != 2 {
		t.Errorf("files_found = %v", decoded["files_found"])
	}

	files := decoded["files"].([]any)
	first := files[0].(map[string]any)
	for _, field := range []string{"path", "size_mb", "reason"} {
		if _, ok := first[field]; !ok {
			t.Errorf("finding missing field %q", field)
		}
	}
}

func TestReportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatYAML).Report(sampleReport()); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if decoded["scan_type"] != "large_files" {
		t.Errorf("scan_type = %v", decoded["scan_type"])
	}
	if decoded["total_size_mb"] != 7.25 {
		t.Errorf("total_size_mb = %v", decoded["total_size_mb"])
	}
}

func TestReportSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatSummary).Report(sampleReport()); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"large_files", "/data", "Files Found: 2", "7.25 MB", "sub/huge.iso", "All files shown"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestReportTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).Report(sampleReport()); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Path", "Reason", "big.zip", "Total: 2 files"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestReportUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, OutputFormat("xml")).Report(sampleReport()); err == nil {
		t.Error("Report accepted unsupported format")
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := SaveToFile(sampleReport(), path, FormatJSON); err != nil {
		t.Fatalf("SaveToFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved report: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("saved report is not valid JSON: %v", err)
	}
	if decoded["path"] != "/data" {
		t.Errorf("path = %v", decoded["path"])
	}
}
