package domain

import (
	"reflect"
	"testing"
)

func exportFormatRecords() []RawRecord {
	return []RawRecord{
		{"id": "f1", "name": "Markdown", "language": "markdown", "mime_type": "text/markdown", "template_ref": "tpl/md"},
		{"id": "f2", "name": "OpenAPI", "language": "yaml", "mime_type": "application/yaml", "template_ref": "tpl/oas"},
		{"id": "f3", "name": "Plain Text", "language": "markdown", "mime_type": "text/plain"},
	}
}

func TestExportFormatEngineLoad(t *testing.T) {
	e := NewExportFormatEngine()
	report := e.Load(exportFormatRecords())

	if report.Accepted != 3 || report.Rejected != 0 {
		t.Fatalf("report = %d/%d, want 3/0", report.Accepted, report.Rejected)
	}

	f, ok := e.Get("f2")
	if !ok || f.Name != "OpenAPI" {
		t.Errorf("Get(f2) = (%+v, %v)", f, ok)
	}
}

func TestExportFormatEngineRejectsMalformed(t *testing.T) {
	e := NewExportFormatEngine()
	report := e.Load([]RawRecord{
		{"name": "No ID", "mime_type": "text/plain"},
		{"id": "f1", "mime_type": "text/plain"},
	})
	if report.Accepted != 0 || report.Rejected != 2 {
		t.Fatalf("report = %d/%d, want 0 accepted, 2 rejected", report.Accepted, report.Rejected)
	}
}

func TestExportFormatMIMEFamily(t *testing.T) {
	f := ExportFormat{MIMEType: "text/markdown"}
	if f.MIMEFamily() != "text" {
		t.Errorf("MIMEFamily = %q, want text", f.MIMEFamily())
	}
	if (ExportFormat{}).MIMEFamily() != "" {
		t.Error("MIMEFamily of empty MIME type should be empty")
	}
}

func TestExportFormatEngineFilter(t *testing.T) {
	e := NewExportFormatEngine()
	e.Load(exportFormatRecords())

	text, err := e.Filter(FilterSpec{"mime_family": "text"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	ids := make([]string, 0)
	for _, f := range text {
		ids = append(ids, f.ID)
	}
	if !reflect.DeepEqual(ids, []string{"f1", "f3"}) {
		t.Errorf("mime_family filter = %v, want [f1 f3]", ids)
	}

	markdown, err := e.Filter(FilterSpec{"language": "markdown", "mime_family": "text"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(markdown) != 2 {
		t.Errorf("combined filter length = %d, want 2", len(markdown))
	}

	if _, err := e.Filter(FilterSpec{"extension": ".md"}); err == nil {
		t.Error("expected error for unsupported dimension")
	}
}

func TestExportFormatRoundTrip(t *testing.T) {
	e := NewExportFormatEngine()
	e.Load(exportFormatRecords())

	second := NewExportFormatEngine()
	report := second.Load(e.SerializeAll())
	if report.Rejected != 0 {
		t.Fatalf("re-load rejected %d: %v", report.Rejected, report.Rejections)
	}
	if !reflect.DeepEqual(e.All(), second.All()) {
		t.Errorf("round trip changed records:\n%#v\n%#v", e.All(), second.All())
	}
}
