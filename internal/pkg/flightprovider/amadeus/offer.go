package amadeus

// Wire types for the flight-offers search response. Only the fields the
// resolvers read are mapped.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type flightOffersResponse struct {
	Data []Offer `json:"data"`
}

type Offer struct {
	ID                     string           `json:"id"`
	Itineraries            []OfferItinerary `json:"itineraries"`
	Price                  Price            `json:"price"`
	ValidatingAirlineCodes []string         `json:"validatingAirlineCodes"`
}

type OfferItinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure     Endpoint `json:"departure"`
	Arrival       Endpoint `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	Duration      string   `json:"duration"`
	NumberOfStops int      `json:"numberOfStops"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}
