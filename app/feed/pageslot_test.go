package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>News</title></head>
<body>
  <h1>County news</h1>
  <div id="feed"><p class="feed-empty">No recent activity.</p></div>
  <footer>Footer text stays</footer>
</body>
</html>
`

func TestPageSlotSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.html")
	if err := os.WriteFile(path, []byte(testPage), 0644); err != nil {
		t.Fatalf("Failed to write page fixture: %v", err)
	}

	slot := NewPageSlot(path, "feed")
	entries := []Entry{{ID: "cn-001", Date: "2026-02-08", Title: "Hearing scheduled", Category: "News"}}
	NewRenderer().Run(entries, slot)

	if err := slot.Save(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read page back: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, "Hearing scheduled") {
		t.Error("Page should contain the rendered card")
	}
	if strings.Contains(page, "No recent activity") {
		t.Error("Previous slot content should be replaced")
	}
	if !strings.Contains(page, "Footer text stays") {
		t.Error("Content outside the slot must be preserved")
	}
	if !strings.Contains(page, "County news") {
		t.Error("Content outside the slot must be preserved")
	}
}

func TestPageSlotMissingElement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.html")
	if err := os.WriteFile(path, []byte(testPage), 0644); err != nil {
		t.Fatalf("Failed to write page fixture: %v", err)
	}

	slot := NewPageSlot(path, "nonexistent")
	slot.SetContent("<p>x</p>")

	if err := slot.Save(); err == nil {
		t.Fatal("Expected error for missing slot element")
	}
}

func TestPageSlotSaveWithoutContent(t *testing.T) {
	slot := NewPageSlot("irrelevant.html", "feed")

	if err := slot.Save(); err == nil {
		t.Fatal("Expected error when saving before content was set")
	}
}

func TestPageSlotMissingPage(t *testing.T) {
	slot := NewPageSlot(filepath.Join(t.TempDir(), "missing.html"), "feed")
	slot.SetContent("<p>x</p>")

	if err := slot.Save(); err == nil {
		t.Fatal("Expected error for missing page file")
	}
}
