package issues

import (
	"encoding/json"
)

// rawIssueFields mirrors the GitHub API issue shape with required fields as
// pointers so absence and presence are distinguishable after decoding.
type rawIssueFields struct {
	Number  *int64          `json:"number"`
	Title   *string         `json:"title"`
	HTMLURL *string         `json:"html_url"`
	State   *string         `json:"state"`
	Labels  json.RawMessage `json:"labels"`
}

// rawLabelFields mirrors a single label object; only the name is consumed.
type rawLabelFields struct {
	Name *string `json:"name"`
}

// NormalizeIssueRecord maps one raw API record into an Issue.
//
// The record is accepted only when number, title, html_url, and state are all
// present with their expected types; otherwise the record is dropped and the
// second return value is false. The repository slug is injected by the caller
// rather than read from the record. Normalization never fails the batch.
func NormalizeIssueRecord(repositorySlug string, rawRecord json.RawMessage) (Issue, bool) {
	var recordFields rawIssueFields
	if decodingError := json.Unmarshal(rawRecord, &recordFields); decodingError != nil {
		return Issue{}, false
	}

	if recordFields.Number == nil || recordFields.Title == nil || recordFields.HTMLURL == nil || recordFields.State == nil {
		return Issue{}, false
	}

	return Issue{
		Repository: repositorySlug,
		Number:     int(*recordFields.Number),
		Title:      *recordFields.Title,
		URL:        *recordFields.HTMLURL,
		State:      *recordFields.State,
		Labels:     extractLabelNames(recordFields.Labels),
	}, true
}

// extractLabelNames collects the name of every well-formed label element.
//
// An absent or non-array labels field yields an empty sequence, and elements
// without a string name are dropped individually; label handling never
// produces an error.
func extractLabelNames(rawLabels json.RawMessage) []string {
	labelNames := make([]string, 0)

	if len(rawLabels) == 0 {
		return labelNames
	}

	var rawLabelElements []json.RawMessage
	if decodingError := json.Unmarshal(rawLabels, &rawLabelElements); decodingError != nil {
		return labelNames
	}

	for _, rawLabelElement := range rawLabelElements {
		var labelFields rawLabelFields
		if decodingError := json.Unmarshal(rawLabelElement, &labelFields); decodingError != nil {
			continue
		}
		if labelFields.Name == nil {
			continue
		}
		labelNames = append(labelNames, *labelFields.Name)
	}

	return labelNames
}
