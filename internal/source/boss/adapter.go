package boss

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/normalize"
	"go-scraper-bridge/internal/page"
	"go-scraper-bridge/internal/source"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
)

const sourceName = "BOSS直聘"

// Card layouts BOSS has shipped, newest first.
var listCardSelectors = []string{
	".job-card-wrapper",
	".job-list-box li",
	".rec-job-list li",
	".job-card-body",
}

// Some postings are published by staffing agencies; the real employer only
// appears in the body text as "代招公司: X". Best-effort capture.
var proxyRecruiterRe = regexp.MustCompile(`代招公司[:：\s]+([^\n\s!！？,，。]+)`)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Name() string {
	return sourceName
}

func (a *Adapter) Classify(snap *page.Snapshot) model.PageType {
	switch {
	case strings.Contains(snap.URL, "/job_detail/"):
		return model.PageDetail
	case strings.Contains(snap.URL, "/geek/jobs"):
		return model.PageList
	default:
		return model.PageUnknown
	}
}

func (a *Adapter) ExtractListing(snap *page.Snapshot) ([]model.ListingSummary, error) {
	cards, ok := page.Cards(snap.Doc.Selection, listCardSelectors...)
	if !ok {
		return nil, source.ErrNoListings
	}

	seen := mapset.NewSet[string]()
	var jobs []model.ListingSummary
	cards.Each(func(_ int, card *goquery.Selection) {
		titleEl := page.First(card, "a.job-name", ".job-title", "a")
		href, hasHref := titleEl.Attr("href")
		href = strings.TrimSpace(href)
		if !hasHref || href == "" {
			//no resolvable detail link: drop the card
			return
		}

		sourceURL := normalize.CanonicalURL(snap.Resolve(href))
		if !seen.Add(sourceURL) {
			return
		}

		jobs = append(jobs, model.ListingSummary{
			Title:      strings.TrimSpace(titleEl.Text()),
			SourceURL:  sourceURL,
			Team:       normalize.CleanCompany(page.Text(card, ".company-name a", ".company-text a", ".company-name")),
			Salary:     page.Text(card, ".salary"),
			City:       page.Text(card, ".job-area", ".job-area-wrapper"),
			SourceName: sourceName,
			Type:       model.TypeDomestic,
			IsRemote:   "1",
		})
	})
	return jobs, nil
}

func (a *Adapter) ExtractDetail(snap *page.Snapshot) (detail *model.PostingDetail, err error) {
	//the autopilot runs unattended; a broken page must surface as a failure
	//result, never as a panic
	defer func() {
		if r := recover(); r != nil {
			detail = nil
			err = fmt.Errorf("boss: detail parse failed: %v", r)
		}
	}()

	doc := snap.Doc.Selection
	d := &model.PostingDetail{
		SourceURL:   normalize.CanonicalURL(snap.URL),
		Title:       page.Text(doc, ".job-banner h1", "h1"),
		Description: page.JoinText(doc, ".job-sec-text", "\n"),
		Keywords:    page.TextList(doc, ".job-keyword-list li"),
		Salary:      page.Text(doc, ".job-banner .salary", ".salary"),
		Experience: page.Text(doc,
			".text-desc.text-experience",
			".text-desc.text-experiece", //the live site ships this typo
			".job-banner .text-desc:nth-child(2)"),
		City: page.Text(doc,
			".text-desc.text-city",
			".text-city",
			".job-banner .text-desc:nth-child(1)"),
		Team:   normalize.CleanCompany(page.Text(doc, ".level-list .company-name")),
		Status: "在招",
	}

	if status := page.Text(doc, ".job-status"); status != "" {
		d.Status = status
	}

	if d.Team == "" {
		if m := proxyRecruiterRe.FindStringSubmatch(snap.BodyText()); m != nil {
			d.Team = strings.TrimSpace(m[1])
			log.Printf("🔍 Proxy recruiter detected: %s", d.Team)
		}
	}

	//publish time: prefer the machine-readable meta timestamp
	if content, ok := doc.Find("meta[property='bytedance:updated_time']").Attr("content"); ok {
		d.CreatedAt = normalize.DateFromTimestamp(content)
	}
	if d.CreatedAt == "" {
		if ts := strings.TrimSpace(doc.Find(".bytedance\\:updated_time").Text()); ts != "" {
			d.CreatedAt = normalize.DateFromTimestamp(ts)
		}
	}

	return d, nil
}
