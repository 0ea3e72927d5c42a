// Package scraper looks up track BPM/key/camelot on tunebat.com through a
// headless browser. TuneBat renders its stats client-side behind bot
// detection, so a real browser engine is the only reliable way in.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/iremlopsum/yt-stem-splitter/internal/resolve"
)

const (
	searchURLFormat = "https://tunebat.com/Search?q=%s"
	resultSelector  = `a[href*='/Info/']`

	// One lookup at a time, and not too often; TuneBat rate-limits
	// aggressively.
	lookupInterval = 5 * time.Second
	lookupTimeout  = 90 * time.Second
)

// extractFieldsJS collects every secondary caption span on the page together
// with the value heading next to it, yielding raw label→value pairs.
const extractFieldsJS = `
[...document.querySelectorAll('span.ant-typography-secondary')].map(s => {
	const h = s.parentElement ? s.parentElement.querySelector('h3') : null;
	return [s.textContent.trim(), h ? h.textContent.trim() : ''];
})`

// TuneBat is a resolve.LookupSource backed by tunebat.com.
type TuneBat struct {
	enabled     bool
	browserPath string
	limiter     *rate.Limiter
	timeout     time.Duration
}

// NewTuneBat builds the TuneBat lookup source. The source reports itself
// unavailable when disabled or when no Chrome/Chromium binary can be found,
// so the resolver silently skips it instead of failing.
func NewTuneBat(enabled bool) *TuneBat {
	return &TuneBat{
		enabled:     enabled,
		browserPath: findBrowser(),
		limiter:     rate.NewLimiter(rate.Every(lookupInterval), 1),
		timeout:     lookupTimeout,
	}
}

func (t *TuneBat) Name() string { return "tunebat" }

// Available reports whether a lookup can be attempted at all.
func (t *TuneBat) Available() bool {
	return t.enabled && t.browserPath != ""
}

// Lookup searches TuneBat for the title, opens the first track page and
// extracts its BPM/key/camelot stats. A page with none of the expected
// fields yields empty metadata, not an error.
func (t *TuneBat) Lookup(ctx context.Context, title string) (resolve.RawMetadata, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return resolve.RawMetadata{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(t.browserPath),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.NoSandbox,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	searchURL := fmt.Sprintf(searchURLFormat, url.QueryEscape(title))

	var trackURL string
	var found bool
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(searchURL),
		chromedp.WaitVisible(resultSelector, chromedp.ByQuery),
		chromedp.AttributeValue(resultSelector, "href", &trackURL, &found, chromedp.ByQuery),
	)
	if err != nil {
		return resolve.RawMetadata{}, fmt.Errorf("tunebat search for %q: %w", title, err)
	}
	if !found || trackURL == "" {
		return resolve.RawMetadata{}, fmt.Errorf("tunebat search for %q: no results", title)
	}
	if trackURL[0] == '/' {
		trackURL = "https://tunebat.com" + trackURL
	}

	var pairs [][]string
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(trackURL),
		// Scroll once to trigger lazy-loaded stat boxes.
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, 0)`, nil),
		chromedp.Evaluate(extractFieldsJS, &pairs),
	)
	if err != nil {
		return resolve.RawMetadata{}, fmt.Errorf("tunebat track page %s: %w", trackURL, err)
	}

	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if len(pair) == 2 {
			fields[pair[0]] = pair[1]
		}
	}
	return FieldsToMetadata(fields), nil
}

// findBrowser locates a Chrome/Chromium binary on this machine, or returns
// "" when none is installed.
func findBrowser() string {
	candidates := []string{
		"google-chrome", "google-chrome-stable", "chromium", "chromium-browser",
	}
	if runtime.GOOS == "darwin" {
		candidates = append(candidates,
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome")
	}
	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}
