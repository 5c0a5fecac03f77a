// Wire shapes shared by every source adapter and the bridge server.
// Field names follow the server's CSV schema, so json tags use snake_case.

package model

// PageType classifies what kind of page a snapshot shows.
type PageType string

const (
	PageList    PageType = "list"
	PageDetail  PageType = "detail"
	PageUnknown PageType = "unknown"
)

// Record type markers used by the downstream pipeline.
const (
	TypeDomestic      = "国内"
	TypeInternational = "国外"
)

// SkipTitle is the sentinel title reported for postings that are out of
// scope (not globally remote), so the task source never hands the URL out again.
const SkipTitle = "Skipped (Not Global Remote)"

// ListingSummary is one row of a search-results page.
type ListingSummary struct {
	Title      string `json:"title"`
	SourceURL  string `json:"source_url"`
	Team       string `json:"team"`
	Salary     string `json:"salary"`
	City       string `json:"city"`
	SourceName string `json:"source_name"`
	Type       string `json:"type"`
	IsRemote   string `json:"is_remote"`
}

// PostingDetail is one fully parsed job posting. String fields default to ""
// rather than being dropped; the server assumes the keys exist.
type PostingDetail struct {
	SourceURL     string   `json:"source_url"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords,omitempty"`
	Salary        string   `json:"salary"`
	SalaryEnglish string   `json:"salary_english,omitempty"`
	Experience    string   `json:"experience"`
	City          string   `json:"city"`
	Team          string   `json:"team"`
	Status        string   `json:"status,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	Summary       string   `json:"summary,omitempty"`
	IsRemote      string   `json:"is_remote,omitempty"`
}

// SkipDetail builds the reduced payload reported for an out-of-scope posting.
func SkipDetail(sourceURL string) *PostingDetail {
	return &PostingDetail{
		SourceURL: sourceURL,
		Title:     SkipTitle,
		IsRemote:  "0",
	}
}
