package scorer

import "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"

// taxonomy maps each category to its keyword list. Keywords are matched as
// lower-case substrings in order; the first hit per post/category pair wins.
var taxonomy = map[domain.Category][]string{
	domain.CategoryMacro: {
		"fed", "inflation", "rate cut", "rate hike", "interest rate", "cpi",
		"gdp", "recession", "unemployment", "treasury", "yield", "fomc",
		"powell", "soft landing", "stimulus",
	},
	domain.CategoryEarnings: {
		"earnings", "revenue", "guidance", "eps", "beats", "misses",
		"quarterly", "forecast", "outlook", "profit", "buyback", "dividend",
	},
	domain.CategoryTech: {
		"ai", "chip", "semiconductor", "nvidia", "apple", "microsoft",
		"google", "meta", "amazon", "tesla", "software", "cloud", "iphone",
		"datacenter",
	},
	domain.CategoryCrypto: {
		"bitcoin", "btc", "ethereum", "eth", "crypto", "blockchain",
		"stablecoin", "defi", "halving", "etf approval", "solana",
	},
	domain.CategoryRegulation: {
		"sec", "regulation", "antitrust", "lawsuit", "fine", "probe",
		"investigation", "compliance", "sanction", "tariff", "ban",
	},
}
