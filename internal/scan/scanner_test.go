package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fenilsonani/diskscout/internal/testutil"
)

const mb = 1024 * 1024

func TestParseMode(t *testing.T) {
	for _, mode := range Modes {
		got, err := ParseMode(string(mode))
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", mode, err)
		}
		if got != mode {
			t.Errorf("ParseMode(%q) = %q", mode, got)
		}
	}

	if _, err := ParseMode("everything"); !IsUnknownMode(err) {
		t.Errorf("ParseMode(everything) error = %v, want UnknownScanMode", err)
	}
}

func TestScanLargeFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("big.zip", 3*mb)
	f.CreateSizedFile("big.txt", 3*mb)
	f.CreateSizedFile("small.zip", 1*mb)
	f.CreateSizedFile(filepath.Join("sub", "huge.iso"), 4*mb)

	report, err := Scan(context.Background(), f.RootDir, ModeLargeFiles, Params{
		MinSizeMB:  2,
		Extensions: []string{".iso", ".zip"},
	})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	// big.txt fails the extension filter, small.zip the size threshold
	if report.FilesFound != 2 {
		t.Fatalf("FilesFound = %d, want 2", report.FilesFound)
	}
	if report.TotalSizeMB != 7.0 {
		t.Errorf("TotalSizeMB = %v, want 7.0", report.TotalSizeMB)
	}

	// Descending by size
	wantPaths := []string{filepath.Join("sub", "huge.iso"), "big.zip"}
	for i, want := range wantPaths {
		if report.Files[i].Path != want {
			t.Errorf("Files[%d].Path = %q, want %q", i, report.Files[i].Path, want)
		}
		if report.Files[i].Reason != "Large file" {
			t.Errorf("Files[%d].Reason = %q, want Large file", i, report.Files[i].Reason)
		}
	}
	if report.Files[0].SizeMB != 4.0 || report.Files[1].SizeMB != 3.0 {
		t.Errorf("sizes = %v, %v, want 4.0, 3.0", report.Files[0].SizeMB, report.Files[1].SizeMB)
	}
}

func TestScanLargeFilesUnrestrictedExtensions(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("a.bin", 2*mb)
	f.CreateSizedFile("b.txt", 3*mb)
	f.CreateSizedFile("tiny.dat", 100)

	report, err := Scan(context.Background(), f.RootDir, ModeLargeFiles, Params{MinSizeMB: 1})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != 2 {
		t.Fatalf("FilesFound = %d, want 2", report.FilesFound)
	}

	for i := 0; i < len(report.Files)-1; i++ {
		if report.Files[i].SizeMB < report.Files[i+1].SizeMB {
			t.Errorf("results not descending at %d: %v < %v",
				i, report.Files[i].SizeMB, report.Files[i+1].SizeMB)
		}
	}
}

func TestScanLargeFilesSizeRounding(t *testing.T) {
	f := testutil.NewFixture(t)
	size := 3*mb + 512*1024 // 3.5 MB exactly
	f.CreateSizedFile("movie.mkv", size)

	report, err := Scan(context.Background(), f.RootDir, ModeLargeFiles, Params{MinSizeMB: 1})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.Files[0].SizeMB != 3.5 {
		t.Errorf("SizeMB = %v, want 3.5", report.Files[0].SizeMB)
	}
}

func TestScanTempFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	temp := []string{
		"session.tmp",
		"old.temp",
		"index.cache",
		"app.log",
		"settings.bak",
		"notes.txt~",
		"build_cache_index.bin",
		filepath.Join("sub", "tmp_upload.dat"),
	}
	for _, name := range temp {
		f.CreateSizedFile(name, 10)
	}
	f.CreateSizedFile("report.txt", 10)
	f.CreateSizedFile("movie.mkv", 10)

	report, err := Scan(context.Background(), f.RootDir, ModeTempFiles, Params{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != len(temp) {
		t.Fatalf("FilesFound = %d, want %d", report.FilesFound, len(temp))
	}
	for _, finding := range report.Files {
		if finding.Reason != "Temporary file" {
			t.Errorf("Reason = %q, want Temporary file", finding.Reason)
		}
		if finding.Path == "report.txt" || finding.Path == "movie.mkv" {
			t.Errorf("non-temp file %q was classified", finding.Path)
		}
	}
}

func TestIsTempName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.tmp", true},
		{"a.TMP", true},
		{"a.temp", true},
		{"a.cache", true},
		{"a.log", true},
		{"a.bak", true},
		{"notes~", true},
		{"my_tmp_file.bin", true},
		{"TempData.bin", true},
		{"cachefile.bin", true},
		{"__pycache__.marker", true},
		{"report.txt", false},
		{"movie.mkv", false},
		{"stamped.bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTempName(tt.name); got != tt.want {
				t.Errorf("isTempName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestScanOldFiles(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileWithAge("ancient.dat", 1*mb, 200*24*time.Hour)
	f.CreateFileWithAge("recent.dat", 1*mb, 10*24*time.Hour)

	report, err := Scan(context.Background(), f.RootDir, ModeOldFiles, Params{AgeDays: 180})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != 1 {
		t.Fatalf("FilesFound = %d, want 1", report.FilesFound)
	}
	if report.Files[0].Path != "ancient.dat" {
		t.Errorf("Path = %q, want ancient.dat", report.Files[0].Path)
	}
	if report.Files[0].Reason != "Not modified in 200 days" {
		t.Errorf("Reason = %q, want Not modified in 200 days", report.Files[0].Reason)
	}
}

func TestScanDuplicates(t *testing.T) {
	f := testutil.NewFixture(t)
	// Three files sharing one non-zero size
	f.CreateSizedFile("a.bin", 1234)
	f.CreateSizedFile("b.bin", 1234)
	f.CreateSizedFile("c.bin", 1234)
	// Zero-byte files never form candidate groups
	f.CreateSizedFile("empty1", 0)
	f.CreateSizedFile("empty2", 0)
	// Unique size
	f.CreateSizedFile("unique.bin", 999)

	report, err := Scan(context.Background(), f.RootDir, ModeDuplicates, Params{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != 2 {
		t.Fatalf("FilesFound = %d, want 2", report.FilesFound)
	}

	wantReason := "Potential duplicate (3 files with same size)"
	for _, finding := range report.Files {
		if finding.Reason != wantReason {
			t.Errorf("Reason = %q, want %q", finding.Reason, wantReason)
		}
		if finding.Path == "a.bin" {
			t.Error("first-encountered group member must be withheld, but a.bin was flagged")
		}
		if strings.HasPrefix(finding.Path, "empty") {
			t.Errorf("zero-byte file %q must never be a duplicate candidate", finding.Path)
		}
	}
}

func TestScanTruncation(t *testing.T) {
	f := testutil.NewFixture(t)
	for i := 0; i < 25; i++ {
		f.CreateSizedFile(fmt.Sprintf("file%02d.tmp", i), 1000)
	}

	report, err := Scan(context.Background(), f.RootDir, ModeTempFiles, Params{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != 25 {
		t.Errorf("FilesFound = %d, want 25 (true count survives truncation)", report.FilesFound)
	}
	if len(report.Files) != 20 {
		t.Errorf("len(Files) = %d, want 20", len(report.Files))
	}
	if !report.Truncated {
		t.Error("Truncated = false, want true")
	}
	if report.Note != "Limited to first 20 files" {
		t.Errorf("Note = %q, want Limited to first 20 files", report.Note)
	}

	// Total reflects all 25 files, not the truncated subset
	if want := float64(25*1000) / float64(mb); report.TotalSizeMB != roundMB(want) {
		t.Errorf("TotalSizeMB = %v, want %v", report.TotalSizeMB, roundMB(want))
	}
}

func roundMB(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func TestScanCustomLimit(t *testing.T) {
	f := testutil.NewFixture(t)
	for i := 0; i < 8; i++ {
		f.CreateSizedFile(fmt.Sprintf("file%d.tmp", i), 100)
	}

	report, err := Scan(context.Background(), f.RootDir, ModeTempFiles, Params{Limit: 5})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if len(report.Files) != 5 || report.FilesFound != 8 {
		t.Errorf("Files/FilesFound = %d/%d, want 5/8", len(report.Files), report.FilesFound)
	}
	if report.Note != "Limited to first 5 files" {
		t.Errorf("Note = %q", report.Note)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			f := testutil.NewFixture(t)

			report, err := Scan(context.Background(), f.RootDir, mode, Params{})
			if err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}

			if report.FilesFound != 0 {
				t.Errorf("FilesFound = %d, want 0", report.FilesFound)
			}
			if report.TotalSizeMB != 0.0 {
				t.Errorf("TotalSizeMB = %v, want 0.0", report.TotalSizeMB)
			}
			if len(report.Files) != 0 {
				t.Errorf("len(Files) = %d, want 0", len(report.Files))
			}
			if report.Truncated {
				t.Error("Truncated = true, want false")
			}
			if report.Note != "All files shown" {
				t.Errorf("Note = %q, want All files shown", report.Note)
			}
		})
	}
}

func TestScanFindingPathsAreRelative(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile(filepath.Join("deep", "nested", "big.bin"), 2*mb)

	report, err := Scan(context.Background(), f.RootDir, ModeLargeFiles, Params{MinSizeMB: 1})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if report.FilesFound != 1 {
		t.Fatalf("FilesFound = %d, want 1", report.FilesFound)
	}
	if filepath.IsAbs(report.Files[0].Path) {
		t.Errorf("finding path %q is absolute, want relative to root", report.Files[0].Path)
	}
	if report.Files[0].Path != filepath.Join("deep", "nested", "big.bin") {
		t.Errorf("Path = %q", report.Files[0].Path)
	}
	if report.Root != f.RootDir {
		t.Errorf("Root = %q, want %q", report.Root, f.RootDir)
	}
}

func TestScanUnknownMode(t *testing.T) {
	f := testutil.NewFixture(t)

	_, err := Scan(context.Background(), f.RootDir, Mode("everything"), Params{})
	if !IsUnknownMode(err) {
		t.Errorf("error = %v, want UnknownScanMode", err)
	}
}

func TestScanInvalidRoot(t *testing.T) {
	f := testutil.NewFixture(t)
	filePath := f.CreateSizedFile("not-a-dir.txt", 10)
	missing := filepath.Join(f.RootDir, "does-not-exist")

	tests := []struct {
		name string
		root string
	}{
		{"missing path", missing},
		{"file not directory", filePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(context.Background(), tt.root, ModeLargeFiles, Params{})
			if !IsInvalidRoot(err) {
				t.Fatalf("error = %v, want InvalidRoot", err)
			}
			// Diagnostic includes the attempted resolved path
			if !strings.Contains(err.Error(), tt.root) {
				t.Errorf("error %q does not mention resolved path %q", err, tt.root)
			}
		})
	}
}

func TestScanInvalidParameterFailsBeforeWalk(t *testing.T) {
	_, err := Scan(context.Background(), "/definitely/missing", ModeLargeFiles, Params{MinSizeMB: -1})
	if !IsInvalidParameter(err) {
		t.Errorf("error = %v, want InvalidParameter (parameters are checked first)", err)
	}
}

func TestScanCancellation(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("a.bin", 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, f.RootDir, ModeLargeFiles, Params{})
	if err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("error = %v, want context cancellation", err)
	}
}

func TestConcurrentScans(t *testing.T) {
	f := testutil.NewFixture(t)
	for i := 0; i < 10; i++ {
		f.CreateSizedFile(fmt.Sprintf("file%d.tmp", i), 500)
	}

	done := make(chan error, 4)
	for _, mode := range Modes {
		go func(m Mode) {
			_, err := Scan(context.Background(), f.RootDir, m, Params{})
			done <- err
		}(mode)
	}

	for range Modes {
		if err := <-done; err != nil {
			t.Errorf("concurrent scan returned error: %v", err)
		}
	}
}
