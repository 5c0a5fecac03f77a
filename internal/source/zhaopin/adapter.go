package zhaopin

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/normalize"
	"go-scraper-bridge/internal/page"
	"go-scraper-bridge/internal/source"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"
)

const sourceName = "智联招聘"

var listCardSelectors = []string{
	".positionlist .jobinfo",
	".joblist-box__item",
	".positionlist__item",
	".job-card",
	".job-list-item",
	".item-list-box",
}

var (
	expRangeRe = regexp.MustCompile(`\d+-\d+年`)
	expAboveRe = regexp.MustCompile(`\d+年以`)
)

type Adapter struct {
	now func() time.Time
}

func New() *Adapter {
	return &Adapter{now: time.Now}
}

func (a *Adapter) Name() string {
	return sourceName
}

func (a *Adapter) Classify(snap *page.Snapshot) model.PageType {
	switch {
	case strings.Contains(snap.URL, "jobdetail/") || strings.Contains(snap.URL, "jobs.zhaopin.com"):
		return model.PageDetail
	case strings.Contains(snap.URL, "/sou/") || strings.Contains(snap.URL, "sou.zhaopin.com"):
		return model.PageList
	default:
		return model.PageUnknown
	}
}

func (a *Adapter) ExtractListing(snap *page.Snapshot) ([]model.ListingSummary, error) {
	cards, ok := page.Cards(snap.Doc.Selection, listCardSelectors...)
	if !ok {
		//last resort: any anchor that looks like a job link, grouped by its
		//enclosing div
		cards, ok = cardsFromAnchors(snap.Doc)
	}
	if !ok {
		return nil, source.ErrNoListings
	}

	seen := mapset.NewSet[string]()
	var jobs []model.ListingSummary
	cards.Each(func(_ int, card *goquery.Selection) {
		titleEl := page.First(card,
			".jobinfo_top a",
			".joblist-box__item-name",
			".position-name",
			"a[class*='name']",
			"a")

		linkEl := titleEl
		if goquery.NodeName(titleEl) != "a" {
			linkEl = page.First(titleEl, "a")
			if linkEl.Length() == 0 {
				linkEl = page.First(card, "a")
			}
		}

		href, hasHref := linkEl.Attr("href")
		href = strings.TrimSpace(href)
		if titleEl.Length() == 0 || !hasHref || href == "" {
			return
		}

		sourceURL := normalize.CanonicalURL(snap.Resolve(href))
		if !seen.Add(sourceURL) {
			return
		}

		jobs = append(jobs, model.ListingSummary{
			Title:      strings.TrimSpace(titleEl.Text()),
			SourceURL:  sourceURL,
			Team:       page.Text(card, ".company-name", ".company-text a", ".company__name", ".companyinfo a"),
			Salary:     page.Text(card, ".joblist-box__item-salary", ".job-salary", ".item-salary", ".jobinfo_top_salary"),
			City:       page.Text(card, ".joblist-box__item-address", ".job-address", ".item-address", ".jobinfo_top_city"),
			SourceName: sourceName,
			Type:       model.TypeDomestic,
			IsRemote:   "1",
		})
	})
	return jobs, nil
}

// cardsFromAnchors recovers cards from layouts none of the known selectors
// cover: take every anchor that names a job and treat its enclosing div as
// the card, deduplicated.
func cardsFromAnchors(doc *goquery.Document) (*goquery.Selection, bool) {
	anchors := doc.Find("a[class*='name'], a[class*='title']")
	if anchors.Length() == 0 {
		return nil, false
	}

	seen := make(map[*html.Node]bool)
	cards := anchors.Slice(0, 0)
	anchors.Each(func(_ int, a *goquery.Selection) {
		card := a.Closest("div")
		if card.Length() == 0 {
			card = a.Parent()
		}
		node := card.Get(0)
		if node == nil || seen[node] {
			return
		}
		seen[node] = true
		cards = cards.AddNodes(node)
	})
	return cards, cards.Length() > 0
}

func (a *Adapter) ExtractDetail(snap *page.Snapshot) (detail *model.PostingDetail, err error) {
	defer func() {
		if r := recover(); r != nil {
			detail = nil
			err = fmt.Errorf("zhaopin: detail parse failed: %v", r)
		}
	}()

	doc := snap.Doc.Selection
	now := a.now()

	//the info strip mixes city, experience and education in one list; city is
	//the first entry, experience is whichever entry mentions 经验/年限
	city := ""
	experience := "经验不限"
	foundExp := false
	doc.Find(".summary-plane__info li").Each(func(i int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if i == 0 {
			if anchor := li.Find("a"); anchor.Length() > 0 {
				city = strings.TrimSpace(anchor.First().Text())
			} else {
				city = text
			}
		}
		if !foundExp && (strings.Contains(text, "经验") ||
			strings.Contains(text, "不限") ||
			expRangeRe.MatchString(text) ||
			expAboveRe.MatchString(text)) {
			experience = text
			foundExp = true
		}
	})

	d := &model.PostingDetail{
		SourceURL:   normalize.CanonicalURL(snap.URL),
		Title:       page.Text(doc, ".summary-plane__title", ".job-summary__title", "h1"),
		Description: page.Text(doc, ".describtion__detail-content", ".job-detail"),
		Keywords:    page.TextList(doc, ".describtion__skills-item"),
		Salary:      page.Text(doc, ".summary-plane__salary", ".job-summary__salary"),
		Experience:  experience,
		City:        city,
		Team:        page.Text(doc, ".company__title", ".company-name", ".company__name"),
		Status:      "在招",
		CreatedAt:   now.Format("2006-01-02"),
	}

	if d.City == "" {
		d.City = page.Text(doc, ".job-summary__city")
	}
	if len(d.Keywords) == 0 {
		d.Keywords = page.TextList(doc, ".job-summary__tags span, .job-keyword-list li")
	}

	//refine the default date from the update-time marker when present
	timeEl := doc.Find(".iconfont.icon-update-time").Parent()
	if timeEl.Length() == 0 {
		timeEl = page.First(doc, ".update-date", ".publish-time")
	}
	if timeEl.Length() > 0 {
		if resolved := normalize.DateFromChinese(timeEl.Text(), now); resolved != "" {
			d.CreatedAt = resolved
		}
	}

	return d, nil
}
