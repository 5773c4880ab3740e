package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/picnoir/picobak/internal/domain"
	appErrors "github.com/picnoir/picobak/internal/errors"
)

func TestPrintDecisionCopyWithMkdir(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintDecision(domain.Placement{
		SourcePath:  "/in/pic1.jpg",
		TargetDir:   "/nas/Photos/2023/02/20",
		TargetPath:  "/nas/Photos/2023/02/20/pic1.jpg",
		MkdirNeeded: true,
		Action:      domain.ActionCopy,
	})

	output := buf.String()
	if !strings.Contains(output, "create directory /nas/Photos/2023/02/20") {
		t.Fatalf("expected mkdir line, got %q", output)
	}
	if !strings.Contains(output, "copy /in/pic1.jpg -> /nas/Photos/2023/02/20/pic1.jpg") {
		t.Fatalf("expected copy line, got %q", output)
	}
}

func TestPrintDecisionDryRunPhrasing(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf, DryRun: true}

	printer.PrintDecision(domain.Placement{
		SourcePath: "/in/pic1.jpg",
		TargetPath: "/nas/Photos/2023/02/20/pic1.jpg",
		Action:     domain.ActionCopy,
	})

	if !strings.Contains(buf.String(), "would copy") {
		t.Fatalf("expected dry-run phrasing, got %q", buf.String())
	}
}

func TestPrintDecisionDuplicateSkip(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintDecision(domain.Placement{
		SourcePath:  "/in/pic1.jpg",
		TargetPath:  "/nas/Photos/2023/02/20/pic1.jpg",
		MkdirNeeded: true,
		Action:      domain.ActionSkipDuplicate,
	})

	output := buf.String()
	if !strings.Contains(output, "already backed up") {
		t.Fatalf("expected skip line, got %q", output)
	}
	if strings.Contains(output, "create directory") {
		t.Fatalf("skip must not announce directory creation, got %q", output)
	}
}

func TestPrintDecisionRenamedCollision(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintDecision(domain.Placement{
		SourcePath: "/in/pic1.jpg",
		TargetPath: "/nas/Photos/2023/02/20/pic1-1.jpg",
		Action:     domain.ActionCopyRenamed,
	})

	output := buf.String()
	if !strings.Contains(output, "pic1-1.jpg") || !strings.Contains(output, "name taken") {
		t.Fatalf("expected rename note, got %q", output)
	}
}

func TestPrintReportStatisticsBlock(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	report := domain.Report{
		Duplicates:     2,
		CopiedExif:     3,
		CopiedExifTool: 1,
		CopiedModTime:  1,
		Renamed:        1,
	}
	report.RecordFailure("/in/broken.jpg", appErrors.Wrap(appErrors.SourceUnreadable, "open", "/in/broken.jpg", errors.New("boom")))

	printer.PrintReport(report)
	output := buf.String()

	for _, want := range []string{
		"Backup Statistics:",
		"Duplicates: 2",
		"Copied: 5",
		"Renamed to avoid collision: 1",
		"3: EXIF metadata",
		"1: the exiftool program",
		"1: filesystem metadata",
		"Failures: 1",
		"Cannot read source file /in/broken.jpg",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in report output:\n%s", want, output)
		}
	}
}

func TestPrintReportNoFailureSection(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintReport(domain.Report{CopiedExif: 1})
	if strings.Contains(buf.String(), "WARNING") {
		t.Fatalf("expected no warning section, got %q", buf.String())
	}
}
