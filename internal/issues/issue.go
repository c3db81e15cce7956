package issues

// Issue is the canonical record produced by the aggregation pipeline.
//
// State carries whatever vocabulary the API reports (for example "open" or
// "closed") without constraining it to an enumeration, since the upstream set
// of values may grow.
type Issue struct {
	Repository string   `json:"repo"`
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	State      string   `json:"state"`
	Labels     []string `json:"labels"`
}
