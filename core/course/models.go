package course

// Module is immutable reference data, loaded once at startup.
// JSON field names match the modules.json data file.
type Module struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Duration    string `json:"duration"`
}

// Summary is a Module without its full text content, for listings.
type Summary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func (m Module) Summary() Summary {
	return Summary{ID: m.ID, Title: m.Title, Description: m.Description, Duration: m.Duration}
}
