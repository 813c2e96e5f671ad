package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/blizzardcast/blizzard/pkg/api"
)

// Key derives a stable cache key from the fields of a forecast request
// that determine its fitted result. ForecastMonths is included because it
// changes the requested horizon, not just the fit, and the cache should
// not serve a 3-month forecast in response to a 12-month request.
func Key(req api.ForecastRequest) string {
	var b strings.Builder
	b.Grow(32 + len(req.Series)*8)

	fmt.Fprintf(&b, "%d|%d|%d|%d|%d|%d|%d|%t|",
		req.StartYear, req.StartMonth, req.ForecastMonths,
		req.P, req.D, req.Q, req.SeasonalPeriod, req.UseEasterRegressor)

	for _, v := range req.Series {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(',')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "blizzard:forecast:" + hex.EncodeToString(sum[:])
}
