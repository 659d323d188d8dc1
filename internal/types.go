package internal

type Category string

const (
	CategoryEquipment  Category = "equipment"
	CategoryFittings   Category = "fittings"
	CategoryRoundSizes Category = "round_sizes"
	CategoryRectSizes  Category = "rect_sizes"
)

// ExtractedItem is a single recognized occurrence, not yet aggregated.
// Dimension is empty when no size could be associated with the element.
type ExtractedItem struct {
	Element   string
	Dimension string
	Note      string
}

// SizeTally counts occurrences per canonical size label (e.g. "Ø160", "300x200").
type SizeTally map[string]int

// Row is one line of the output bill of materials.
type Row struct {
	Element   string `json:"element"`
	Dimension string `json:"dimension"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// SourceStats describes how much text each source contributed.
type SourceStats struct {
	Pages       int `json:"pages"`
	VectorChars int `json:"vector_chars"`
	OCRLines    int `json:"ocr_lines"`
}

// Extraction is the raw two-source text produced at the input boundary:
// vector text lines, OCR lines (when OCR supplementation ran) and usage
// statistics, plus process notes such as "vector_text" and "ocr_used".
type Extraction struct {
	VectorLines []string
	OCRLines    []string
	Stats       SourceStats
	Notes       []string
}

// Counts holds the total quantity per output category.
type Counts struct {
	Equipment  int `json:"equipment"`
	Fittings   int `json:"fittings"`
	RoundSizes int `json:"round_sizes"`
	RectSizes  int `json:"rect_sizes"`
}

// Summary accompanies the row set for caller-facing reporting.
type Summary struct {
	Counts Counts      `json:"counts"`
	Notes  []string    `json:"notes"`
	Stats  SourceStats `json:"stats"`
}

type JobStatus string

const (
	JobReceived  JobStatus = "received"
	JobProcessed JobStatus = "processed"
	JobFailed    JobStatus = "failed"
)

// JobRecord is one extraction job in the ledger.
type JobRecord struct {
	ID         string    `json:"job_id"`
	Filename   string    `json:"filename"`
	Status     JobStatus `json:"status"`
	Counts     Counts    `json:"counts"`
	Notes      string    `json:"notes"`
	ResultPath string    `json:"result_path,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}
