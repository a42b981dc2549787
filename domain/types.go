package domain

// Currency a currency identifier, e.g. BYN or the cross pair EUR/USD
type Currency string

// Rate the two prices a bank quotes for a currency
type Rate struct {
	Currency Currency
	// Buy price the bank buys at
	Buy float64
	// Cell price the bank sells at
	Cell float64
}

// Rates maps a currency to its quoted rate. Rebuilt on every pass.
type Rates map[Currency]Rate

// RateQuote a rate as text, the way it is displayed
type RateQuote struct {
	Currency Currency
	Buy      string
	Cell     string
}

// Card a displayed account balance
type Card struct {
	Currency Currency
	Balance  string
}

// Conversion a balance converted into another currency
type Conversion struct {
	Currency Currency
	Amount   float64
	// Text the amount formatted like the original balance
	Text string
}
