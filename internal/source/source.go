// Define an interface for all source adapters
// Ensure consistency

package source

import (
	"errors"

	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/page"
)

// ErrNoListings means no card selector matched anything on the page. It is
// distinct from a successful extraction that produced zero records.
var ErrNoListings = errors.New("no job cards found on page")

// Source is the per-board extraction adapter. Implementations never panic
// past this boundary; broken structures come back as errors.
type Source interface {
	// Name is the board name as the pipeline records it (BOSS直聘, ...)
	Name() string

	// Classify reports what kind of page the snapshot shows. Pure, cheap,
	// never fails; unrecognized structures degrade to PageUnknown.
	Classify(snap *page.Snapshot) model.PageType

	// ExtractListing pulls every summary row from a search-results page.
	// Cards without a resolvable detail link are skipped, not emitted.
	ExtractListing(snap *page.Snapshot) ([]model.ListingSummary, error)

	// ExtractDetail parses one full posting from a detail page.
	ExtractDetail(snap *page.Snapshot) (*model.PostingDetail, error)
}
