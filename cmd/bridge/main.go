package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"go-scraper-bridge/internal/autopilot"
	"go-scraper-bridge/internal/bridge"
	"go-scraper-bridge/internal/browser"
	"go-scraper-bridge/internal/config"
	"go-scraper-bridge/internal/session"
	"go-scraper-bridge/internal/source"
	"go-scraper-bridge/internal/source/boss"
	"go-scraper-bridge/internal/source/wellfound"
	"go-scraper-bridge/internal/source/zhaopin"
	"go-scraper-bridge/internal/status"
	"go-scraper-bridge/utils"
)

func main() {
	sourceName := flag.String("source", "boss", "job board: boss | zhaopin | wellfound")
	mode := flag.String("mode", "auto", "what to run: list | detail | auto | off")
	startURL := flag.String("url", "", "override the start URL")
	flag.Parse()

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Source: %s, mode: %s", *sourceName, *mode)

	src := buildSource(*sourceName)
	if src == nil {
		log.Fatalf("❌ Unknown source %q", *sourceName)
	}
	srcCfg := cfg.Sources[*sourceName]

	//status sinks: always the log, Telegram when configured
	sinks := status.Multi{status.LogSink{}}
	var tg *status.TelegramSink
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		tg, err = status.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
		} else {
			sinks = append(sinks, tg)
			log.Println("🤖 Telegram sink initialized.")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log.Println("🚀 Starting Scraper Bridge...")

	//init playwright manager
	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()

	//cookies keep the logged-in session alive on boards that require one
	cookieFile := filepath.Join(cfg.CookiesPath, fmt.Sprintf("cookies-%s.json", *sourceName))
	cookies, err := browser.LoadCookies(cookieFile)
	if err != nil {
		log.Printf("⚠️ Could not load %s cookies: %v. Continuing.", *sourceName, err)
	} else {
		log.Printf("🍪 Loaded %s cookies (%d)", *sourceName, len(cookies))
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}

	pg, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	nav := browser.NewPageNavigator(pg)
	target := srcCfg.StartURL
	if *startURL != "" {
		target = *startURL
	}
	if err := nav.Navigate(target); err != nil {
		log.Fatalf("❌ Failed to open %s: %v", target, err)
	}

	client := bridge.NewClient(srcCfg.ServerURL, cfg.ServerTimeout())
	store := session.NewStore(cfg.SessionPath)
	pilot := autopilot.New(src, nav, client, store, sinks, autopilot.Config{
		Settle:  cfg.SettleDelay(),
		PaceMin: cfg.PaceMin(),
		PaceMax: cfg.PaceMax(),
	})

	screenshots := utils.NewScreenshotLogger()

	switch *mode {
	case "list":
		//look alive before reading the results grid
		utils.RandomDelay(1000, 2000)
		utils.MouseJiggle(pg)
		utils.SmoothScroll(pg)
		if err := pilot.ScrapeList(ctx); err != nil {
			screenshots.Capture(pg, *sourceName+"-list-failure", "🚨 Listing extraction failed")
			log.Fatalf("❌ %v", err)
		}

	case "detail":
		if err := pilot.ScrapeDetail(ctx); err != nil {
			screenshots.Capture(pg, *sourceName+"-detail-failure", "🚨 Detail extraction failed")
			log.Fatalf("❌ %v", err)
		}

	case "auto":
		if !pilot.Enabled() {
			if _, err := pilot.Toggle(ctx); err != nil {
				log.Fatalf("❌ Failed to arm autopilot: %v", err)
			}
		}
		if err := pilot.Run(ctx); err != nil {
			screenshots.Capture(pg, *sourceName+"-autopilot-halt", "🚨 Autopilot halted")
			log.Fatalf("❌ Autopilot halted: %v", err)
		}
		if tg != nil {
			tg.Notify(fmt.Sprintf("Autopilot finished for %s.", src.Name()))
		}

	case "off":
		if pilot.Enabled() {
			if _, err := pilot.Toggle(ctx); err != nil {
				log.Fatalf("❌ Failed to disarm autopilot: %v", err)
			}
		}
		log.Println("🛑 Autopilot flag cleared.")

	default:
		log.Fatalf("❌ Unknown mode %q", *mode)
	}

	log.Println("🏁 Execution finished.")
}

func buildSource(name string) source.Source {
	switch name {
	case "boss":
		return boss.New()
	case "zhaopin":
		return zhaopin.New()
	case "wellfound":
		return wellfound.New()
	default:
		return nil
	}
}
