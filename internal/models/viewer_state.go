package models

// ViewerState is a point-in-time copy of a viewer widget's state cells
type ViewerState struct {
	Input   string        `json:"input"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
	Result  *SearchResult `json:"result,omitempty"`
}

// HasError reports whether an error message is present
func (s ViewerState) HasError() bool {
	return s.Error != ""
}

// HasResult reports whether a successful search result is displayed
func (s ViewerState) HasResult() bool {
	return s.Result != nil && s.Result.Profile != nil
}
