package email

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"caption-digest/internal/models"
	"caption-digest/shared/config"
)

const testTemplate = `<html><body>
<h1>{{.Query}}</h1>
{{range .Videos}}<p>{{.Title}}</p>{{end}}
<div>{{.ShortSummary}}</div>
</body></html>`

func testSender(t *testing.T, template string) *Sender {
	t.Helper()

	path := filepath.Join(t.TempDir(), "template.html")
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		t.Fatal(err)
	}

	return NewSender(&config.EmailConfig{
		SMTPServer:   "smtp.test.com",
		SMTPPort:     587,
		FromEmail:    "from@test.com",
		ToEmail:      "to@test.com",
		TemplateFile: path,
	})
}

func testReport() *models.DigestReport {
	return &models.DigestReport{
		Query: "golang concurrency",
		Date:  time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		Videos: []models.Video{
			{ID: "vid1", Title: "Channels in depth"},
			{ID: "vid2", Title: "Worker pools"},
		},
		ShortSummary: "Two talks about Go concurrency.",
	}
}

func TestGenerateEmailBody(t *testing.T) {
	sender := testSender(t, testTemplate)

	body, err := sender.generateEmailBody(testReport())
	if err != nil {
		t.Fatalf("generateEmailBody() failed: %v", err)
	}

	for _, want := range []string{"golang concurrency", "Channels in depth", "Worker pools", "Two talks about Go concurrency."} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestGenerateEmailBodyMissingTemplate(t *testing.T) {
	sender := NewSender(&config.EmailConfig{TemplateFile: "/nonexistent/template.html"})

	if _, err := sender.generateEmailBody(testReport()); err == nil {
		t.Error("generateEmailBody() succeeded without a template file")
	}
}

func TestGenerateEmailBodyBadTemplate(t *testing.T) {
	sender := testSender(t, "{{.Unclosed")

	if _, err := sender.generateEmailBody(testReport()); err == nil {
		t.Error("generateEmailBody() succeeded on a malformed template")
	}
}

func TestSendDigestNilReport(t *testing.T) {
	sender := testSender(t, testTemplate)

	if err := sender.SendDigest(nil); err == nil {
		t.Error("SendDigest() accepted a nil report")
	}
}

func TestSendDigestEmptyReportIsNoop(t *testing.T) {
	sender := testSender(t, testTemplate)

	// No videos means no email and no SMTP connection attempt.
	if err := sender.SendDigest(&models.DigestReport{Query: "x", Date: time.Now()}); err != nil {
		t.Errorf("SendDigest() on an empty report = %v, want nil", err)
	}
}
