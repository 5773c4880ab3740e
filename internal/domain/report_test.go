package domain

import (
	"errors"
	"testing"
)

func TestReportBreaksCopiesDownByOrigin(t *testing.T) {
	var report Report
	report.Record(Placement{Action: ActionCopy, Origin: OriginExif})
	report.Record(Placement{Action: ActionCopyRenamed, Origin: OriginExifTool})
	report.Record(Placement{Action: ActionCopy, Origin: OriginModTime})
	report.Record(Placement{Action: ActionSkipDuplicate, Origin: OriginExif})

	if report.Copied() != 3 {
		t.Fatalf("expected 3 copied, got %d", report.Copied())
	}
	if report.CopiedExif != 1 || report.CopiedExifTool != 1 || report.CopiedModTime != 1 {
		t.Fatalf("unexpected origin counts: %+v", report)
	}
	if report.Renamed != 1 {
		t.Fatalf("expected 1 renamed, got %d", report.Renamed)
	}
	if report.Duplicates != 1 {
		t.Fatalf("expected 1 duplicate, got %d", report.Duplicates)
	}
	if report.Failed() {
		t.Fatalf("expected no failures")
	}
}

func TestReportRecordsFailures(t *testing.T) {
	var report Report
	report.RecordFailure("/in/broken.jpg", errors.New("boom"))

	if !report.Failed() {
		t.Fatalf("expected report to be failed")
	}
	if len(report.Failures) != 1 || report.Failures[0].Path != "/in/broken.jpg" {
		t.Fatalf("unexpected failures: %+v", report.Failures)
	}
}
