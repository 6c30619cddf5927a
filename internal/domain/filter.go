package domain

// Size filter values. Thresholds: small <= 100 < medium <= 500 < large.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Price type filter values.
const (
	PriceFree      = "free"
	PricePaid      = "paid"
	PriceEarlyBird = "early_bird"
)

// Named time periods for the period filter.
const (
	PeriodThisWeek  = "this_week"
	PeriodNextWeek  = "next_week"
	PeriodThisMonth = "this_month"
	PeriodNextMonth = "next_month"
)

// Tag vocabularies as published on the site. The filter engine does not
// validate against these: unknown tokens are carried as-is and simply match
// nothing.
var (
	TargetRoles      = []string{"エンジニア", "デザイナー", "PM", "マーケター", "全般"}
	TechCategories   = []string{"フロントエンド", "バックエンド", "インフラ", "AI・ML", "モバイル", "セキュリティ", "データ"}
	DesignCategories = []string{"UI/UX", "グラフィック", "ブランディング", "プロダクトデザイン"}
	Regions          = []string{"東京", "大阪", "名古屋", "福岡", "その他", "オンライン"}
)

// EventFilters is a user-supplied query specification. The zero value means
// "no constraint" for every field. Never mutated in place: each change builds
// a fresh value which is re-encoded to the URL.
// swagger:model EventFilters
type EventFilters struct {
	Roles            []string `json:"roles"`
	TechCategories   []string `json:"techCategories"`
	DesignCategories []string `json:"designCategories"`
	Format           string   `json:"format"`
	Size             string   `json:"size"`
	PriceType        string   `json:"priceType"`
	Region           string   `json:"region"`
	Period           string   `json:"period"`
	Keyword          string   `json:"keyword"`
}

// IsZero reports whether no constraint is active.
func (f EventFilters) IsZero() bool {
	return len(f.Roles) == 0 &&
		len(f.TechCategories) == 0 &&
		len(f.DesignCategories) == 0 &&
		f.Format == "" &&
		f.Size == "" &&
		f.PriceType == "" &&
		f.Region == "" &&
		f.Period == "" &&
		f.Keyword == ""
}
