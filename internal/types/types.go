package types

// Unit of a metric value as reported by Lighthouse.
type Unit string

const (
	UnitNone         Unit = ""
	UnitMilliseconds Unit = "ms"
)

// Category is a top-level Lighthouse score entry. Score is nil when absent or not a finite number.
type Category struct {
	Title string
	Score *float64 // 0-1
}

// Audit is a single Lighthouse audit entry. NumericValue is nil when absent or not a finite number.
type Audit struct {
	Title        string
	NumericValue *float64 // in the audit native unit
}

// Report is one parsed Lighthouse result (one run). Immutable once parsed.
type Report struct {
	Name string // file base name, used for ordering
	Path string

	Categories map[string]Category
	Audits     map[string]Audit

	// Envelope, informational only.
	FinalURL          string
	FetchTime         string
	LighthouseVersion string
	FormFactor        string // desktop, mobile, or empty
}

// MetricDefinition describes one comparable value.
type MetricDefinition struct {
	Key        string
	Label      string
	Unit       Unit
	IsCategory bool // categories are read as score*100 and are higher-is-better
}

// HigherIsBetter reports the direction used when classifying deltas.
func (d MetricDefinition) HigherIsBetter() bool {
	return d.IsCategory
}

// Class is the classification of a delta.
type Class int

const (
	ClassNeutral Class = iota
	ClassGood
	ClassBad
)

func (c Class) String() string {
	switch c {
	case ClassNeutral:
		return "neutral"
	case ClassGood:
		return "good"
	case ClassBad:
		return "bad"
	}

	return "unknown"
}

// Delta is a signed, classified after-minus-before difference.
type Delta struct {
	Value *float64 // nil when either side is missing
	Text  string
	Class Class
}

// SummaryRow is the comparison of one metric definition across two groups of reports.
type SummaryRow struct {
	Definition MetricDefinition
	Before     *float64
	After      *float64
	BeforeText string
	AfterText  string
	Delta      Delta
}
