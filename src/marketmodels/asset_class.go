package marketmodels

import "fmt"

type AssetClass string

const (
	AssetClassEquity    AssetClass = "equity"
	AssetClassCommodity AssetClass = "commodity"
)

func (a AssetClass) Validate() error {
	if a != AssetClassEquity && a != AssetClassCommodity {
		return fmt.Errorf("AssetClass: Validate: invalid asset class: %s", a)
	}

	return nil
}
