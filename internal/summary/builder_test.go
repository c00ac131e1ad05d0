package summary

import (
	"testing"
)

func sampleHeader() map[string]string {
	return map[string]string{
		"name":           "Apple Inc.",
		"close":          "112.28",
		"change":         "-1.17",
		"percent_change": "(-1.03%)",
	}
}

func sampleTable() map[string]string {
	return map[string]string{
		"previous_close":         "113.45",
		"open":                   "112.89",
		"bid":                    "112.26 x 1100",
		"ask":                    "112.38 x 800",
		"days_range":             "112.22 - 114.14",
		"fifty_two_week_range":   "53.15 - 137.98",
		"volume":                 "68,995,045",
		"avg_volume":             "187,527,044",
		"market_cap":             "1.92T",
		"beta_five_year_monthly": "1.28",
		"pe_ratio_ttm":           "34.23",
		"eps_ttm":                "3.28",
		"earnings_date":          "Oct 26, 2020 - Oct 30, 2020",
		"forward_dividend_yield": "0.82 (0.72%)",
		"exdividend_date":        "Aug 07, 2020",
		"one_year_target_est":    "119.23",
	}
}

func TestBuild(t *testing.T) {
	page, err := Build("aapl", sampleHeader(), sampleTable())
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	if page.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want %q", page.Symbol, "AAPL")
	}
	if page.Name != "Apple Inc." {
		t.Errorf("Name = %q, want %q", page.Name, "Apple Inc.")
	}

	floatChecks := []struct {
		name string
		got  *float64
		want float64
	}{
		{"Close", page.Close, 112.28},
		{"Change", page.Change, -1.17},
		{"PercentChange", page.PercentChange, -1.03},
		{"PreviousClose", page.PreviousClose, 113.45},
		{"Open", page.Open, 112.89},
		{"High", page.High, 112.22},
		{"Low", page.Low, 114.14},
		{"FiftyTwoWeekHigh", page.FiftyTwoWeekHigh, 53.15},
		{"FiftyTwoWeekLow", page.FiftyTwoWeekLow, 137.98},
		{"BidPrice", page.BidPrice, 112.26},
		{"AskPrice", page.AskPrice, 112.38},
		{"BetaFiveYearMonthly", page.BetaFiveYearMonthly, 1.28},
		{"PERatioTTM", page.PERatioTTM, 34.23},
		{"EPSTTM", page.EPSTTM, 3.28},
		{"ForwardDividendYield", page.ForwardDividendYield, 0.82},
		{"ForwardDividendYieldPercentage", page.ForwardDividendYieldPercentage, 0.72},
		{"OneYearTargetEst", page.OneYearTargetEst, 119.23},
	}
	for _, c := range floatChecks {
		if c.got == nil {
			t.Errorf("%s = nil, want %v", c.name, c.want)
		} else if *c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, *c.got, c.want)
		}
	}

	intChecks := []struct {
		name string
		got  *int64
		want int64
	}{
		{"BidSize", page.BidSize, 1100},
		{"AskSize", page.AskSize, 800},
		{"Volume", page.Volume, 68995045},
		{"AverageVolume", page.AverageVolume, 187527044},
		{"MarketCap", page.MarketCap, 1920000000000},
	}
	for _, c := range intChecks {
		if c.got == nil {
			t.Errorf("%s = nil, want %v", c.name, c.want)
		} else if *c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, *c.got, c.want)
		}
	}

	if page.EarningsDate == nil {
		t.Error("EarningsDate = nil, want start of window")
	} else if got := page.EarningsDate.Format("2006-01-02"); got != "2020-10-26" {
		t.Errorf("EarningsDate = %s, want 2020-10-26", got)
	}
	if page.ExDividendDate == nil {
		t.Error("ExDividendDate = nil, want date")
	} else if got := page.ExDividendDate.Format("2006-01-02"); got != "2020-08-07" {
		t.Errorf("ExDividendDate = %s, want 2020-08-07", got)
	}

	if page.Quote.Name != "Apple Inc." {
		t.Errorf("Quote.Name = %q, want %q", page.Quote.Name, "Apple Inc.")
	}
	if page.Quote.Price == nil || *page.Quote.Price != 112.28 {
		t.Errorf("Quote.Price = %v, want 112.28", page.Quote.Price)
	}
}

func TestBuild_HeaderPrecedence(t *testing.T) {
	header := sampleHeader()
	table := sampleTable()
	// A table value colliding with a header key must not win.
	table["close"] = "999.99"

	page, err := Build("AAPL", header, table)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	if page.Close == nil || *page.Close != 112.28 {
		t.Errorf("Close = %v, want header value 112.28", page.Close)
	}
}

func TestBuild_MissingFragments(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		table  map[string]string
	}{
		{"no header", nil, sampleTable()},
		{"no table", sampleHeader(), nil},
		{"neither", nil, nil},
		{"empty maps", map[string]string{}, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Build("AAPL", tt.header, tt.table)
			if page != nil {
				t.Errorf("Build() = %v, want nil page", page)
			}
			if !IsPageNotFound(err) {
				t.Errorf("Build() error = %v, want PageNotFoundError", err)
			}
		})
	}
}

func TestBuild_UnparsableValuesAreAbsent(t *testing.T) {
	table := sampleTable()
	table["volume"] = "N/A"
	table["days_range"] = "N/A - N/A"
	table["earnings_date"] = "N/A"

	page, err := Build("AAPL", sampleHeader(), table)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	if page.Volume != nil {
		t.Errorf("Volume = %v, want nil", *page.Volume)
	}
	if page.High != nil || page.Low != nil {
		t.Errorf("High/Low = %v/%v, want nil/nil", page.High, page.Low)
	}
	if page.EarningsDate != nil {
		t.Errorf("EarningsDate = %v, want nil", page.EarningsDate)
	}
}
