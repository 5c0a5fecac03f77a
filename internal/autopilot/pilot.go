// The drive loop. A browsing context keeps nothing in memory across a
// navigation, so the pilot re-reads the persisted flag at every page load
// and treats the context's current URL as the only position marker. One
// iteration of Run is one page load: extract, report, ask for the next
// target, navigate. Navigation never happens before the report step has
// fully completed.

package autopilot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go-scraper-bridge/internal/bridge"
	"go-scraper-bridge/internal/model"
	"go-scraper-bridge/internal/page"
	"go-scraper-bridge/internal/session"
	"go-scraper-bridge/internal/source"
	"go-scraper-bridge/internal/status"
)

// Navigator is the browsing context the pilot drives.
type Navigator interface {
	CurrentURL() string
	Navigate(url string) error
	Reload() error
	Snapshot() (*page.Snapshot, error)
}

// TaskSource reports extractions and hands out the next target.
type TaskSource interface {
	UploadList(ctx context.Context, jobs []model.ListingSummary) bridge.Result
	UploadDetail(ctx context.Context, detail *model.PostingDetail) bridge.Result
	NextURL(ctx context.Context) (string, bridge.Result)
}

// Config holds the pilot's timing. Settle is the delay after a page load
// before touching the document; the pace window randomizes the gap between
// postings so requests never land at a fixed rate.
type Config struct {
	Settle  time.Duration
	PaceMin time.Duration
	PaceMax time.Duration
}

func (c *Config) applyDefaults() {
	if c.Settle == 0 {
		c.Settle = 3 * time.Second
	}
	if c.PaceMin == 0 {
		c.PaceMin = 4 * time.Second
	}
	if c.PaceMax < c.PaceMin {
		c.PaceMax = c.PaceMin + 4*time.Second
	}
}

type Pilot struct {
	src   source.Source
	nav   Navigator
	tasks TaskSource
	store *session.Store
	sink  status.Sink
	cfg   Config
}

func New(src source.Source, nav Navigator, tasks TaskSource, store *session.Store, sink status.Sink, cfg Config) *Pilot {
	cfg.applyDefaults()
	return &Pilot{src: src, nav: nav, tasks: tasks, store: store, sink: sink, cfg: cfg}
}

// Enabled reads the persisted flag; it is the sole source of truth for
// whether the pilot should resume after a reload.
func (p *Pilot) Enabled() bool {
	return p.store.AutoPilot(p.src.Name())
}

// Toggle flips the persisted flag, then forces a full reload so the next
// page load bootstraps from the new state.
func (p *Pilot) Toggle(ctx context.Context) (bool, error) {
	next := !p.Enabled()
	if err := p.store.SetAutoPilot(p.src.Name(), next); err != nil {
		return false, fmt.Errorf("persist autopilot flag: %w", err)
	}
	if next {
		p.sink.Update("🚀 Autopilot armed, reloading page...")
	} else {
		p.sink.Update("🛑 Autopilot disarmed, reloading page...")
	}
	if err := p.nav.Reload(); err != nil {
		return next, fmt.Errorf("reload page: %w", err)
	}
	return next, nil
}

// Run executes the bootstrap-and-drive cycle until the flag clears, a step
// fails, or ctx is cancelled. Each iteration is one page load.
func (p *Pilot) Run(ctx context.Context) error {
	for {
		if !p.Enabled() {
			p.sink.Update("Autopilot idle.")
			return nil
		}
		//settle: let the freshly loaded page finish rendering
		if err := sleepCtx(ctx, p.cfg.Settle); err != nil {
			return err
		}
		cont, err := p.step(ctx)
		if err != nil || !cont {
			return err
		}
	}
}

// step runs everything that belongs to the current page load. It returns
// cont=false when driving must stop for this load; the persisted flag is
// only cleared on queue exhaustion, so a manual reload after a transient
// failure resumes the session.
func (p *Pilot) step(ctx context.Context) (cont bool, err error) {
	snap, err := p.nav.Snapshot()
	if err != nil {
		p.sink.Alert(fmt.Sprintf("Could not read page: %v", err))
		return false, err
	}

	if p.src.Classify(snap) == model.PageDetail {
		detail, err := p.src.ExtractDetail(snap)
		if err != nil {
			p.sink.Alert(fmt.Sprintf("Detail extraction failed: %v", err))
			return false, err
		}

		res := p.tasks.UploadDetail(ctx, detail)
		if !res.Success {
			//could not confirm progress: stop rather than navigate blindly
			p.sink.Alert("Detail sync failed, halting this pass")
			return false, resultErr(res, "upload_detail rejected")
		}
		p.sink.Update("✅ Detail synced")

		wait := p.pace()
		p.sink.Update(fmt.Sprintf("⏱️ Waiting %.1fs before next hop...", wait.Seconds()))
		if err := sleepCtx(ctx, wait); err != nil {
			return false, err
		}
	}

	p.sink.Update("🔍 Requesting next task...")
	url, res := p.tasks.NextURL(ctx)
	if !res.Success {
		p.sink.Alert("Task source unreachable, halting")
		return false, resultErr(res, "get_next_url failed")
	}
	if url == "" {
		p.sink.Update("🏁 All tasks finished!")
		if err := p.store.SetAutoPilot(p.src.Name(), false); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := p.nav.Navigate(url); err != nil {
		p.sink.Alert(fmt.Sprintf("Navigation failed: %v", err))
		return false, err
	}
	return true, nil
}

// ScrapeList is the manual run-list-extraction trigger.
func (p *Pilot) ScrapeList(ctx context.Context) error {
	p.sink.Update("Searching for job cards...")
	snap, err := p.nav.Snapshot()
	if err != nil {
		p.sink.Alert(fmt.Sprintf("Could not read page: %v", err))
		return err
	}

	jobs, err := p.src.ExtractListing(snap)
	if errors.Is(err, source.ErrNoListings) {
		p.sink.Alert("❌ No postings found")
		return err
	}
	if err != nil {
		p.sink.Alert(fmt.Sprintf("Listing extraction failed: %v", err))
		return err
	}

	p.sink.Update(fmt.Sprintf("Syncing %d postings...", len(jobs)))
	res := p.tasks.UploadList(ctx, jobs)
	if !res.Success {
		p.sink.Alert("❌ Could not reach the bridge server")
		return resultErr(res, "upload_list rejected")
	}
	p.sink.Update(fmt.Sprintf("✅ Synced %d postings", len(jobs)))
	return nil
}

// ScrapeDetail is the manual run-detail-extraction trigger.
func (p *Pilot) ScrapeDetail(ctx context.Context) error {
	p.sink.Update("Parsing posting detail...")
	snap, err := p.nav.Snapshot()
	if err != nil {
		p.sink.Alert(fmt.Sprintf("Could not read page: %v", err))
		return err
	}

	detail, err := p.src.ExtractDetail(snap)
	if err != nil {
		p.sink.Alert(fmt.Sprintf("Detail extraction failed: %v", err))
		return err
	}

	res := p.tasks.UploadDetail(ctx, detail)
	if !res.Success {
		p.sink.Alert("❌ Could not reach the bridge server")
		return resultErr(res, "upload_detail rejected")
	}
	p.sink.Update("✅ Detail synced")
	return nil
}

func (p *Pilot) pace() time.Duration {
	window := p.cfg.PaceMax - p.cfg.PaceMin
	if window <= 0 {
		return p.cfg.PaceMin
	}
	return p.cfg.PaceMin + time.Duration(rand.Int63n(int64(window)))
}

func resultErr(res bridge.Result, fallback string) error {
	if res.Err != nil {
		return res.Err
	}
	return errors.New(fallback)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
