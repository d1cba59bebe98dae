package domain

// Payload is the parsed response body of one successful fetch. The two
// implementations mirror their provider wire formats exactly; nothing is
// renamed or reshaped between decode and render.
type Payload interface {
	payload()
}

// Alert is one active alert feature from the NWS API.
type Alert struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties carries the display fields of an alert.
type AlertProperties struct {
	Headline string `json:"headline"`
}

// AlertCollection is the NWS active-alerts response for one area.
type AlertCollection struct {
	// Area is the normalized code the collection was fetched for. It is not
	// part of the wire payload; the fetcher stamps it after decoding.
	Area string `json:"-"`

	Features []Alert `json:"features"`
}

func (*AlertCollection) payload() {}

// Count returns the number of active alerts, possibly zero.
func (c *AlertCollection) Count() int { return len(c.Features) }

// WeatherReading is the OpenWeather current-conditions response for one city.
type WeatherReading struct {
	Name    string             `json:"name"`
	Sys     ReadingSys         `json:"sys"`
	Main    ReadingMain        `json:"main"`
	Weather []ReadingCondition `json:"weather"`
}

// ReadingSys holds the country block of a reading.
type ReadingSys struct {
	Country string `json:"country"`
}

// ReadingMain holds the numeric measurements of a reading.
type ReadingMain struct {
	Temp     float64 `json:"temp"` // Celsius
	Humidity int     `json:"humidity"`
}

// ReadingCondition is one entry of the weather conditions array.
type ReadingCondition struct {
	Description string `json:"description"`
}

func (*WeatherReading) payload() {}

// Fahrenheit converts the Celsius temperature of the reading.
func (r *WeatherReading) Fahrenheit() float64 {
	return r.Main.Temp*9/5 + 32
}

// Description returns the first condition's description, or "" when the
// provider omitted the field entirely.
func (r *WeatherReading) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}

// Observation is the success value of one fetch cycle: the normalized
// location the request was made for, paired with the parsed payload.
type Observation struct {
	Location string
	Payload  Payload
}
