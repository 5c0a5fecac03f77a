package utils

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay sleeps for a random duration between min and max milliseconds.
func RandomDelay(minMs, maxMs int) {
	if minMs >= maxMs {
		time.Sleep(time.Duration(minMs) * time.Millisecond)
		return
	}
	time.Sleep(time.Duration(rand.Intn(maxMs-minMs)+minMs) * time.Millisecond)
}

// MouseJiggle moves the pointer to a random spot in the viewport. Job boards
// fingerprint sessions that never move the mouse.
func MouseJiggle(page playwright.Page) {
	x := float64(rand.Intn(900) + 50)
	y := float64(rand.Intn(650) + 50)
	page.Mouse().Move(x, y)
	RandomDelay(100, 250)
}

// SmoothScroll drifts down the page with a small upward correction, then jumps
// to the bottom so lazy-loaded job cards render before extraction.
func SmoothScroll(page playwright.Page) {
	page.Mouse().Wheel(0, 450)
	RandomDelay(400, 900)
	page.Mouse().Wheel(0, -150)
	RandomDelay(300, 700)
	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}
