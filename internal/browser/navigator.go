package browser

import (
	"go-scraper-bridge/internal/page"

	"github.com/playwright-community/playwright-go"
)

// PageNavigator adapts a live Playwright page to the autopilot's Navigator.
// The snapshot is the rendered DOM, not the served HTML; these boards build
// their listings client-side.
type PageNavigator struct {
	pw playwright.Page
}

func NewPageNavigator(pw playwright.Page) *PageNavigator {
	return &PageNavigator{pw: pw}
}

func (n *PageNavigator) CurrentURL() string {
	return n.pw.URL()
}

func (n *PageNavigator) Navigate(url string) error {
	_, err := n.pw.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	})
	return err
}

func (n *PageNavigator) Reload() error {
	_, err := n.pw.Reload(playwright.PageReloadOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	return err
}

func (n *PageNavigator) Snapshot() (*page.Snapshot, error) {
	html, err := n.pw.Content()
	if err != nil {
		return nil, err
	}
	return page.New(n.pw.URL(), html)
}
