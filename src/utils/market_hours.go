package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stock-backend/src/models"

	"github.com/scmhub/calendar"
)

// suffixMIC maps exchange suffixes on ticker symbols to ISO 10383 MIC codes
// understood by scmhub/calendar. Plain tickers are NYSE.
var suffixMIC = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".MI": "xmil",
	".MC": "xmad",
	".SW": "xswx",
	".TO": "xtse",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
}

// MICForSymbol returns the exchange MIC for a ticker symbol.
func MICForSymbol(symbol string) string {
	if i := strings.LastIndex(symbol, "."); i > 0 {
		if mic, ok := suffixMIC[symbol[i:]]; ok {
			return mic
		}
	}
	return "xnys"
}

// -----------------------------------------------------------------------------

// MarketHours is the polling gate: open iff open <= time-of-day <= close in the
// configured zone, both ends inclusive. Sub-second parts of now count, so
// 16:00:00.5 is past a 16:00 close. When a calendar is attached, non-business
// days are closed as well.
type MarketHours struct {
	Enabled  bool
	Open     int // seconds since midnight
	Close    int
	Location *time.Location
	Calendar *calendar.Calendar
}

// -----------------------------------------------------------------------------

// NewMarketHours builds the gate from config. calendarMIC may be empty
// (no business-day check), a MIC such as "xnys", or "auto" to derive it
// from the first symbol.
func NewMarketHours(cfg models.MMarketHoursConfig, symbols []string) (*MarketHours, error) {
	open, err := ParseClock(cfg.Open)
	if err != nil {
		return nil, fmt.Errorf("market open: %w", err)
	}
	closeSecs, err := ParseClock(cfg.Close)
	if err != nil {
		return nil, fmt.Errorf("market close: %w", err)
	}
	if closeSecs < open {
		return nil, fmt.Errorf("market close %s is before open %s", cfg.Close, cfg.Open)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("market timezone: %w", err)
	}

	mh := &MarketHours{
		Enabled:  cfg.Enabled,
		Open:     open,
		Close:    closeSecs,
		Location: loc,
	}

	mic := strings.ToLower(strings.TrimSpace(cfg.Calendar))
	if mic == "auto" {
		mic = "xnys"
		if len(symbols) > 0 {
			mic = MICForSymbol(symbols[0])
		}
	}
	if mic != "" {
		cal := calendar.GetCalendar(mic)
		if cal == nil {
			return nil, fmt.Errorf("unknown exchange calendar '%s'", mic)
		}
		mh.Calendar = cal
	}

	return mh, nil
}

// -----------------------------------------------------------------------------

// ParseClock parses "HH:MM" or "HH:MM:SS" into seconds since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock '%s'", s)
	}

	limits := []int{23, 59, 59}
	total := 0
	for i, mult := range []int{3600, 60, 1} {
		if i >= len(parts) {
			break
		}
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 || v > limits[i] {
			return 0, fmt.Errorf("invalid clock '%s'", s)
		}
		total += v * mult
	}
	return total, nil
}

// -----------------------------------------------------------------------------

// IsOpen reports whether polling is allowed at now. Pure: depends only on now
// and the gate's configuration.
func (m *MarketHours) IsOpen(now time.Time) bool {
	if !m.Enabled {
		return true
	}

	local := now.In(m.Location)
	if m.Calendar != nil && !m.Calendar.IsBusinessDay(local) {
		return false
	}

	clock := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return clock >= time.Duration(m.Open)*time.Second && clock <= time.Duration(m.Close)*time.Second
}
