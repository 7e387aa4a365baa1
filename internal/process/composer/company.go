package composer

import (
	"regexp"
	"strings"
)

// tickerAllowList contains bare upper-case tickers recognized without a sigil.
var tickerAllowList = map[string]struct{}{
	"AAPL": {}, "MSFT": {}, "GOOGL": {}, "GOOG": {}, "AMZN": {}, "META": {},
	"NVDA": {}, "TSLA": {}, "AMD": {}, "INTC": {}, "NFLX": {}, "JPM": {},
	"GS": {}, "BAC": {}, "COIN": {}, "MSTR": {}, "BTC": {}, "ETH": {},
}

type companyName struct {
	name   string
	ticker string
}

// companyNames maps lower-case company names to their canonical ticker,
// in fixed scan order.
var companyNames = []companyName{
	{"apple", "AAPL"},
	{"microsoft", "MSFT"},
	{"google", "GOOGL"},
	{"alphabet", "GOOGL"},
	{"amazon", "AMZN"},
	{"meta", "META"},
	{"nvidia", "NVDA"},
	{"tesla", "TSLA"},
	{"netflix", "NFLX"},
	{"intel", "INTC"},
	{"coinbase", "COIN"},
	{"jpmorgan", "JPM"},
	{"goldman", "GS"},
	{"microstrategy", "MSTR"},
}

var (
	sigilTickerRe = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	bareTickerRe  = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
)

// detectCompany scans texts in order for a company reference using three
// pattern classes: sigil tickers ($AAPL), bare allow-listed tickers, and
// case-insensitive company names. The first match wins.
func detectCompany(texts ...string) (string, bool) {
	for _, text := range texts {
		if m := sigilTickerRe.FindStringSubmatch(text); m != nil {
			return m[1], true
		}

		for _, candidate := range bareTickerRe.FindAllString(text, -1) {
			if _, ok := tickerAllowList[candidate]; ok {
				return candidate, true
			}
		}

		lower := strings.ToLower(text)
		for _, c := range companyNames {
			if strings.Contains(lower, c.name) {
				return c.ticker, true
			}
		}
	}

	return "", false
}
