package api

// Lead represents one pricing record in the collection.
// Numeric fields are entered as decimal strings on the client and
// travel as numbers on the wire. ID is empty until the record is
// persisted by the server.
type Lead struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	DiscountRate float64 `json:"discountRate"`
	SupplyPrice  float64 `json:"supplyPrice"`
	Premium      float64 `json:"premium"`
	BasePrice    float64 `json:"basePrice"`
	SalesProfit  float64 `json:"salesProfit"`
	Country      string  `json:"country,omitempty"`
	Flag         string  `json:"flag,omitempty" validate:"omitempty,url"`
}

// LeadListResponse represents the full collection returned by GET /leads
type LeadListResponse struct {
	Items []Lead `json:"items"`
}

// CountrySelection represents one country chosen from the country
// directory. Name and FlagURL merge into the lead draft; the whole
// selection is also forwarded to the server as a best-effort side write.
type CountrySelection struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
}
