package models

// DirtyValue is a raw field value found in stored rows that does not
// normalize-match any entry of the field's official list. Suggestion is the
// canonical replacement when one normalize-matches, empty when the value is
// genuinely novel and the operator must decide.
type DirtyValue struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CleanupReport is the result of classifying one catalog field against its
// official value list.
type CleanupReport struct {
	Field       string       `json:"field"`
	Official    []string     `json:"official"`
	DirtyValues []DirtyValue `json:"dirty_values"`
	Clean       bool         `json:"clean"`
}
