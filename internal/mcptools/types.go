package mcptools

// Every output type declares an optional error field. A populated error is
// the failure discriminator for callers; on success the field is absent from
// the wire. List-valued fields are always non-nil so both outcomes conform
// to the declared output schema.

// ShiftsInput is the input schema for the lookup_shifts MCP tool.
type ShiftsInput struct {
	Day  string `json:"day,omitempty" jsonschema-description:"Weekday name to match exactly, case-insensitive (e.g. Monday)"`
	Name string `json:"name,omitempty" jsonschema-description:"Crew member name fragment, matched case-insensitively as a substring"`
}

// ShiftResult is one roster row in lookup_shifts output.
type ShiftResult struct {
	Date       string `json:"date"`
	Day        string `json:"day"`
	CrewMember string `json:"crew_member"`
	Role       string `json:"role"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Activity   string `json:"activity"`
	Location   string `json:"location"`
	Notes      string `json:"notes,omitempty"`
}

// ShiftsOutput is the output schema for the lookup_shifts MCP tool.
type ShiftsOutput struct {
	Results []ShiftResult `json:"results"`
	Error   string        `json:"error,omitempty"`
}

// CrewInput is the input schema for the list_crew MCP tool.
type CrewInput struct{}

// CrewOutput is the output schema for the list_crew MCP tool.
type CrewOutput struct {
	Crew  []string `json:"crew"`
	Error string   `json:"error,omitempty"`
}

// WeatherInput is the input schema for the weather_lookup MCP tool.
type WeatherInput struct {
	Location string `json:"location" jsonschema-description:"Place to look up weather for"`
	Date     string `json:"date,omitempty" jsonschema-description:"Optional date to pin the lookup to (e.g. 2025-03-03)"`
}

// WeatherOutput is the output schema for the weather_lookup MCP tool.
// Conditions that could not be read from the answer carry the value
// "not found"; that is a normal result, not a failure.
type WeatherOutput struct {
	Location      string `json:"location"`
	Date          string `json:"date,omitempty"`
	Summary       string `json:"summary"`
	Temperature   string `json:"temperature"`
	Wind          string `json:"wind"`
	Precipitation string `json:"precipitation"`
	Error         string `json:"error,omitempty"`
}

// EventsInput is the input schema for the natural_events MCP tool.
type EventsInput struct {
	Limit  int    `json:"limit,omitempty" jsonschema-description:"Maximum number of events to return (default 5)"`
	Days   int    `json:"days,omitempty" jsonschema-description:"Look-back window in days (default 20)"`
	Status string `json:"status,omitempty" jsonschema-description:"Event status: open, closed or all (default open)"`
}

// EventResult is one natural event in natural_events output.
type EventResult struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Date       string   `json:"date,omitempty"`
}

// EventsOutput is the output schema for the natural_events MCP tool.
type EventsOutput struct {
	Events []EventResult `json:"events"`
	Error  string        `json:"error,omitempty"`
}
