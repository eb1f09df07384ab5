package domain

import (
	"fmt"
	"strings"
)

// AssetMix selects one of the historical return series.
type AssetMix string

const (
	AssetMixBonds    AssetMix = "bonds"
	AssetMixStocks   AssetMix = "stocks"
	AssetMixSBBlend  AssetMix = "sb_blend"  // 50% stocks / 50% bonds
	AssetMixSBCBlend AssetMix = "sbc_blend" // 40% stocks / 50% bonds / 10% cash
)

// AllAssetMixes lists the recognised mixes in display order.
var AllAssetMixes = []AssetMix{AssetMixBonds, AssetMixStocks, AssetMixSBBlend, AssetMixSBCBlend}

var assetMixDescriptions = map[AssetMix]string{
	AssetMixBonds:    "10-year Treasury bonds",
	AssetMixStocks:   "S&P 500 stocks",
	AssetMixSBBlend:  "50/50 stock/bond blend",
	AssetMixSBCBlend: "40/50/10 stock/bond/cash blend",
}

// ParseAssetMix resolves a key to an AssetMix. Surrounding whitespace and case are ignored.
func ParseAssetMix(key string) (AssetMix, error) {
	mix := AssetMix(strings.ToLower(strings.TrimSpace(key)))
	if !mix.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetMix, key)
	}
	return mix, nil
}

// Valid reports whether m is one of the four recognised mixes.
func (m AssetMix) Valid() bool {
	_, ok := assetMixDescriptions[m]
	return ok
}

// Description returns a human readable label.
func (m AssetMix) Description() string {
	if d, ok := assetMixDescriptions[m]; ok {
		return d
	}
	return string(m)
}

func (m AssetMix) String() string { return string(m) }
