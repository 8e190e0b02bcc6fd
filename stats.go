package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"tilewalk/updater"
)

var (
	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
	TitleCaser    = cases.Title(language.AmericanEnglish)
)

// frameStats reports updater counters in the HUD and, at most once a
// second, in the debug log.
type frameStats struct {
	limiter *rate.Limiter
}

func newFrameStats() *frameStats {
	return &frameStats{limiter: rate.NewLimiter(rate.Every(time.Second), 1)}
}

func formatUptime(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
}

func statsLines(st updater.Stats, uptime time.Duration) []string {
	fps := 0.0
	if st.LastDelta > 0 {
		fps = 1 / st.LastDelta
	}
	return []string{
		fmt.Sprintf("Uptime: %s", formatUptime(uptime)),
		fmt.Sprintf("Frames: %s (%.0f fps)", humanize.Comma(int64(st.Frames)), fps),
		fmt.Sprintf("Tiles redrawn: %s", humanize.Comma(int64(st.TilesDirtied))),
		fmt.Sprintf("Steps: %s / %s", humanize.Comma(int64(st.StepsCompleted)), humanize.Comma(int64(st.StepsStarted))),
		fmt.Sprintf("Impacts: %s", humanize.Comma(int64(st.Impacts))),
		fmt.Sprintf("Tileset rebuilds: %d", st.TilesetRequests),
	}
}

func (s *frameStats) log(st updater.Stats, uptime time.Duration) {
	if debugLogger == nil || !s.limiter.Allow() {
		return
	}
	logDebug("frame %s after %s: delta %.4fs, %s tiles, %s steps, %s impacts",
		humanize.Comma(int64(st.Frames)), formatUptime(uptime), st.LastDelta,
		humanize.Comma(int64(st.TilesDirtied)),
		humanize.Comma(int64(st.StepsCompleted)),
		humanize.Comma(int64(st.Impacts)))
}
