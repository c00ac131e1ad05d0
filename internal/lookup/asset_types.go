package lookup

// AssetType classifies what kind of tradable instrument a symbol refers to.
type AssetType string

const (
	AssetTypeCurrency       AssetType = "Currency"
	AssetTypeETF            AssetType = "ETF"
	AssetTypeEquity         AssetType = "Equity"
	AssetTypeFund           AssetType = "Fund"
	AssetTypeFutures        AssetType = "Futures"
	AssetTypeIndex          AssetType = "Index"
	AssetTypeMoneyMarket    AssetType = "MoneyMarket"
	AssetTypeOption         AssetType = "Option"
	AssetTypeCryptocurrency AssetType = "Cryptocurrency"
)

// ValidAssetTypes lists every asset type a search match may carry.
var ValidAssetTypes = []AssetType{
	AssetTypeCurrency,
	AssetTypeETF,
	AssetTypeEquity,
	AssetTypeFund,
	AssetTypeFutures,
	AssetTypeIndex,
	AssetTypeMoneyMarket,
	AssetTypeOption,
	AssetTypeCryptocurrency,
}

// IsValidAssetType reports whether t is a known asset type.
func IsValidAssetType(t AssetType) bool {
	for _, valid := range ValidAssetTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// quoteTypeAssets maps the search endpoint's quoteType values to asset
// types.
var quoteTypeAssets = map[string]AssetType{
	"CURRENCY":       AssetTypeCurrency,
	"ETF":            AssetTypeETF,
	"EQUITY":         AssetTypeEquity,
	"MUTUALFUND":     AssetTypeFund,
	"FUTURE":         AssetTypeFutures,
	"INDEX":          AssetTypeIndex,
	"MONEYMARKET":    AssetTypeMoneyMarket,
	"OPTION":         AssetTypeOption,
	"CRYPTOCURRENCY": AssetTypeCryptocurrency,
}

func assetTypeForQuoteType(quoteType string) AssetType {
	return quoteTypeAssets[quoteType]
}
