package wellfound

import (
	"fmt"
	"log"
	"strings"
	"time"

	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/normalize"
	"go-scraper-bridge/internal/page"
	"go-scraper-bridge/internal/source"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
)

const sourceName = "wellfound"

// Wellfound's class names carry build hashes; when they rotate, these rows
// are what needs updating.
const (
	selCompanyContainer = ".styles_component__uTjje"
	selJobList          = ".styles_jobListingList__YGDNO"
	selJobItem          = ".styles_component__Ey28k"
	selJobTitle         = ".styles_titleBar__f7F5e span"
	selDescription      = ".styles_description__36q7q"
	selSalaryHeader     = ".styles_subheader__DfKjh"
	selDetailHeader     = ".styles_header__Ww_7v"
)

// The employer name sits behind a deep anchor chain in the header; keep a
// loose fallback for when the intermediate wrappers shift.
var companyNameSelectors = []string{
	".styles_headerContainer__GfbYF > div > a > div > div > div > a > h2",
	".styles_headerContainer__GfbYF h2",
}

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
	//job URLs look like /jobs/12345-title; the browse page is plain /jobs
	if strings.Contains(snap.URL, "/jobs/") {
		return model.PageDetail
	}
	if snap.Doc.Find(selJobList).Length() > 0 {
		return model.PageList
	}
	if snap.Doc.Find(selDescription).Length() > 0 {
		return model.PageDetail
	}
	return model.PageUnknown
}

// ExtractListing walks company containers; each holds the employer name and
// the jobs it currently lists.
func (a *Adapter) ExtractListing(snap *page.Snapshot) ([]model.ListingSummary, error) {
	containers := snap.Doc.Find(selCompanyContainer)
	if containers.Length() == 0 {
		return nil, source.ErrNoListings
	}

	seen := mapset.NewSet[string]()
	var jobs []model.ListingSummary
	containers.Each(func(_ int, container *goquery.Selection) {
		company := page.Text(container, companyNameSelectors...)

		jobList := container.Find(selJobList)
		if jobList.Length() == 0 {
			return
		}

		jobList.Find(selJobItem).Each(func(_ int, item *goquery.Selection) {
			//the detail link is the item's first element child
			href, _ := item.Children().First().Attr("href")
			href = strings.TrimSpace(href)
			title := strings.TrimSpace(item.Find(selJobTitle).First().Text())
			if href == "" || title == "" {
				return
			}

			sourceURL := normalize.CanonicalURL(snap.Resolve(href))
			if !seen.Add(sourceURL) {
				return
			}

			jobs = append(jobs, model.ListingSummary{
				Title:      title,
				SourceURL:  sourceURL,
				Team:       company,
				Salary:     "", //only the detail page quotes compensation
				City:       "",
				SourceName: sourceName,
				Type:       model.TypeInternational,
				IsRemote:   "1",
			})
		})
	})
	return jobs, nil
}

func (a *Adapter) ExtractDetail(snap *page.Snapshot) (detail *model.PostingDetail, err error) {
	defer func() {
		if r := recover(); r != nil {
			detail = nil
			err = fmt.Errorf("wellfound: detail parse failed: %v", r)
		}
	}()

	doc := snap.Doc.Selection
	sourceURL := normalize.CanonicalURL(snap.URL)
	dts := doc.Find("dt")

	//remote eligibility comes first: a posting that hires remotely only in
	//specific regions is out of scope, but it must still be reported with the
	//skip sentinel or the task source would hand its URL out forever
	hires := strings.ToLower(strings.TrimSpace(ddFor(dts, func(label string) bool {
		return strings.Contains(normalize.Fold(label), "hires remotely")
	}).Text()))
	if hires != "" && !strings.Contains(hires, "everywhere") {
		log.Printf("⏭️ Region-limited remote posting (%s), reporting skip", hires)
		return model.SkipDetail(sourceURL), nil
	}

	salary, salaryEnglish := normalize.ConvertSalary(page.Text(doc, selSalaryHeader))

	city := ""
	if dd := ddFor(dts, func(label string) bool {
		return label == "Location" || label == "Locations"
	}); dd.Length() > 0 {
		if dd.Find("li").Length() > 0 {
			city = page.JoinText(dd, "li", ", ")
		} else {
			city = strings.TrimSpace(dd.Text())
		}
	}

	markets := page.JoinText(ddFor(dts, func(label string) bool {
		return label == "Markets"
	}), "a span", ", ")

	experience := strings.TrimSpace(ddFor(dts, func(label string) bool {
		return strings.Contains(label, "Experience")
	}).Text())

	createdAt := ""
	now := a.now()
	doc.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(span.Text()))
		if !strings.HasPrefix(text, "posted") {
			return true
		}
		if resolved := normalize.DateFromRelative(text, now); resolved != "" {
			createdAt = resolved
			return false
		}
		return true
	})

	return &model.PostingDetail{
		SourceURL:     sourceURL,
		Title:         page.Text(doc, "h1", selDetailHeader),
		Description:   page.Text(doc, selDescription),
		Salary:        salary,
		SalaryEnglish: salaryEnglish,
		Experience:    experience,
		City:          city,
		Team:          strings.TrimSpace(doc.Find("a[href^='/company/']").First().Text()),
		CreatedAt:     createdAt,
		Summary:       markets,
	}, nil
}

// ddFor finds the first <dt> whose label satisfies match and returns its
// sibling <dd>. The result may be empty.
func ddFor(dts *goquery.Selection, match func(string) bool) *goquery.Selection {
	dd := dts.Slice(0, 0)
	dts.EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if match(strings.TrimSpace(dt.Text())) {
			dd = dt.Next()
			return false
		}
		return true
	})
	return dd
}
