// Package summary defines the cleaned per-symbol summary record, the group
// container for batches of records and the loader that builds a record from
// a live page.
package summary

import "time"

// Quote holds the pre-cleaned quote header fields of a summary page.
type Quote struct {
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	Change        *float64 `json:"change"`
	PercentChange *float64 `json:"percent_change"`
}

// Page is the cleaned summary record for one symbol. Symbol is always
// present and uppercased; every other field is optional — a nil pointer
// means the value was not on the page or does not apply to the asset type.
type Page struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	Quote Quote `json:"quote"`

	Open  *float64 `json:"open"`
	High  *float64 `json:"high"`
	Low   *float64 `json:"low"`
	Close *float64 `json:"close"`

	Change        *float64 `json:"change"`
	PercentChange *float64 `json:"percent_change"`

	PreviousClose *float64 `json:"previous_close"`

	BidPrice *float64 `json:"bid_price"`
	BidSize  *int64   `json:"bid_size"`

	AskPrice *float64 `json:"ask_price"`
	AskSize  *int64   `json:"ask_size"`

	FiftyTwoWeekLow  *float64 `json:"fifty_two_week_low"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high"`

	Volume        *int64 `json:"volume"`
	AverageVolume *int64 `json:"average_volume"`

	MarketCap *int64 `json:"market_cap"`

	BetaFiveYearMonthly *float64 `json:"beta_five_year_monthly"`
	PERatioTTM          *float64 `json:"pe_ratio_ttm"`
	EPSTTM              *float64 `json:"eps_ttm"`

	EarningsDate *time.Time `json:"earnings_date"`

	ForwardDividendYield           *float64   `json:"forward_dividend_yield"`
	ForwardDividendYieldPercentage *float64   `json:"forward_dividend_yield_percentage"`
	ExDividendDate                 *time.Time `json:"exdividend_date"`

	OneYearTargetEst *float64 `json:"one_year_target_est"`
}
