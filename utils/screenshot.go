package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotLogger captures full-page screenshots when an extraction or
// autopilot run halts, so selector drift can be diagnosed after the fact.
type ScreenshotLogger struct {
	outputDir string
}

func NewScreenshotLogger() *ScreenshotLogger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenshotLogger{outputDir: dir}
}

// Capture saves a timestamped screenshot under the logger's output dir and
// logs the given message. Capture failures are logged, not fatal.
func (s *ScreenshotLogger) Capture(page playwright.Page, label, message string) error {
	name := fmt.Sprintf("%s_%s.png", label, time.Now().Format("2006-01-02_15-04-05"))
	out := filepath.Join(s.outputDir, name)
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(out),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", out)
	return nil
}
