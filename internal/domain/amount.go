package domain

// Currency is an ISO 4217 alpha-3 currency code.
type Currency string

// MinorUnit is an integer amount in the smallest denomination of its
// currency (cents for USD, yen for JPY, fils for KWD).
type MinorUnit int64

// zeroDecimalCurrencies have no minor unit (1 major unit == 1 minor unit).
var zeroDecimalCurrencies = map[Currency]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "ISK": {}, "JPY": {},
	"KMF": {}, "KRW": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// threeDecimalCurrencies carry three minor-unit digits.
var threeDecimalCurrencies = map[Currency]struct{}{
	"BHD": {}, "IQD": {}, "JOD": {}, "KWD": {}, "LYD": {}, "OMR": {}, "TND": {},
}

// Exponent returns the number of minor-unit digits for the currency.
func (c Currency) Exponent() int32 {
	if _, ok := zeroDecimalCurrencies[c]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[c]; ok {
		return 3
	}
	return 2
}
