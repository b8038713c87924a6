package entity

// QuoteOption is one company's price estimate for a move.
type QuoteOption struct {
	Company   string            `json:"company"`
	Total     float64           `json:"total"`
	Currency  string            `json:"currency"`
	Rating    float64           `json:"rating"`
	Breakdown map[string]string `json:"breakdown,omitempty"`
}

// QuoteComparison is a ranked list of quotes, cheapest first, with the
// savings a customer would see by picking the cheapest over the most
// expensive option.
type QuoteComparison struct {
	Options        []QuoteOption `json:"options"`
	Cheapest       string        `json:"cheapest"`
	MostExpensive  string        `json:"most_expensive"`
	Savings        float64       `json:"savings"`
	SavingsPercent float64       `json:"savings_percent"`
}
