package zhaopin

import (
	"testing"
	"time"

	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/page"
	"go-scraper-bridge/internal/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newAdapter() *Adapter {
	a := New()
	a.now = func() time.Time { return fixedNow }
	return a
}

func newSnap(t *testing.T, url, html string) *page.Snapshot {
	t.Helper()
	snap, err := page.New(url, html)
	require.NoError(t, err)
	return snap
}

func TestClassify(t *testing.T) {
	a := newAdapter()
	tests := []struct {
		url  string
		want model.PageType
	}{
		{"https://jobs.zhaopin.com/CC123456.htm", model.PageDetail},
		{"https://www.zhaopin.com/jobdetail/123.htm", model.PageDetail},
		{"https://sou.zhaopin.com/?jl=530&kw=golang", model.PageList},
		{"https://www.zhaopin.com/", model.PageUnknown},
	}
	for _, tt := range tests {
		snap := newSnap(t, tt.url, "<html><body></body></html>")
		assert.Equal(t, tt.want, a.Classify(snap))
	}
}

const listHTML = `<html><body><div class="positionlist">
<div class="jobinfo">
  <div class="jobinfo_top"><a href="https://jobs.zhaopin.com/CC111.htm?from=sou">Go开发工程师</a>
    <span class="jobinfo_top_salary">20-30K</span>
    <span class="jobinfo_top_city">杭州</span>
  </div>
  <div class="companyinfo"><span class="company-name">网易</span></div>
</div>
<div class="jobinfo">
  <div class="jobinfo_top"><span>已下线职位</span></div>
</div>
</div></body></html>`

func TestExtractListing(t *testing.T) {
	a := newAdapter()
	snap := newSnap(t, "https://sou.zhaopin.com/?kw=golang", listHTML)

	jobs, err := a.ExtractListing(snap)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Go开发工程师", jobs[0].Title)
	assert.Equal(t, "https://jobs.zhaopin.com/CC111.htm", jobs[0].SourceURL)
	assert.Equal(t, "网易", jobs[0].Team)
	assert.Equal(t, "20-30K", jobs[0].Salary)
	assert.Equal(t, "杭州", jobs[0].City)
	assert.Equal(t, "智联招聘", jobs[0].SourceName)
	assert.Equal(t, model.TypeDomestic, jobs[0].Type)
}

func TestExtractListingAnchorFallback(t *testing.T) {
	//none of the known card selectors match; recovery goes through anchors
	//that look like job links
	html := `<html><body>
<div><a class="position-link-name" href="/CC222.htm">后端工程师</a></div>
<div><a class="position-link-name" href="/CC333.htm">测试工程师</a></div>
</body></html>`
	a := newAdapter()
	snap := newSnap(t, "https://sou.zhaopin.com/?kw=golang", html)

	jobs, err := a.ExtractListing(snap)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "https://sou.zhaopin.com/CC222.htm", jobs[0].SourceURL)
}

func TestExtractListingNoCards(t *testing.T) {
	a := newAdapter()
	snap := newSnap(t, "https://sou.zhaopin.com/", "<html><body><p>无结果</p></body></html>")

	_, err := a.ExtractListing(snap)
	assert.ErrorIs(t, err, source.ErrNoListings)
}

const detailHTML = `<html><body>
<h1 class="summary-plane__title">高级Go工程师</h1>
<span class="summary-plane__salary">25-45K·14薪</span>
<ul class="summary-plane__info">
  <li><a>上海</a></li>
  <li>3-5年</li>
  <li>本科</li>
</ul>
<div class="describtion__detail-content">负责核心服务开发。</div>
<ul><li class="describtion__skills-item">Golang</li><li class="describtion__skills-item">MySQL</li></ul>
<div class="company__title">拼多多</div>
<div class="update-date">2月28日更新</div>
</body></html>`

func TestExtractDetail(t *testing.T) {
	a := newAdapter()
	snap := newSnap(t, "https://jobs.zhaopin.com/CC111.htm?refer=1", detailHTML)

	d, err := a.ExtractDetail(snap)
	require.NoError(t, err)

	assert.Equal(t, "https://jobs.zhaopin.com/CC111.htm", d.SourceURL)
	assert.Equal(t, "高级Go工程师", d.Title)
	assert.Equal(t, "负责核心服务开发。", d.Description)
	assert.Equal(t, []string{"Golang", "MySQL"}, d.Keywords)
	assert.Equal(t, "25-45K·14薪", d.Salary)
	assert.Equal(t, "3-5年", d.Experience)
	assert.Equal(t, "上海", d.City)
	assert.Equal(t, "拼多多", d.Team)
	assert.Equal(t, "在招", d.Status)
	assert.Equal(t, "2026-02-28", d.CreatedAt)
}

func TestExtractDetailDefaults(t *testing.T) {
	//no info strip, no update marker: experience and date fall back
	html := `<html><body><h1>某职位</h1></body></html>`
	a := newAdapter()
	snap := newSnap(t, "https://jobs.zhaopin.com/CC999.htm", html)

	d, err := a.ExtractDetail(snap)
	require.NoError(t, err)
	assert.Equal(t, "某职位", d.Title)
	assert.Equal(t, "经验不限", d.Experience)
	assert.Equal(t, "2026-03-10", d.CreatedAt)
}
