package dto

// BenchmarkStatusResponse reports per-dataset load state so operators can see
// which reference files were found at startup.
type BenchmarkStatusResponse struct {
	Dataset string `json:"dataset"`
	File    string `json:"file"`
	Loaded  bool   `json:"loaded"`
	Rows    int    `json:"rows"`
	Error   string `json:"error,omitempty"`
}

// BenchmarkQuery carries the filter values parsed from the query string.
// Empty or "All" values leave the corresponding column unfiltered.
type BenchmarkQuery struct {
	AgeGroup string
	Gender   string
	Sport    string
}

type BenchmarkTableResponse struct {
	Dataset string     `json:"dataset"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}

// BenchmarkLinkResponse pairs each row of the primary dataset with its
// matching rows from the secondary dataset.
type BenchmarkLinkResponse struct {
	Primary   string              `json:"primary"`
	Secondary string              `json:"secondary"`
	LinkKey   string              `json:"link_key"`
	Entries   []BenchmarkLinkItem `json:"entries"`
}

type BenchmarkLinkItem struct {
	Row     []string   `json:"row"`
	Matches [][]string `json:"matches"`
}
