package domain

// MarketContent is the hand-authored market content before publishing.
// It has the same shape as MarketDataArtifact minus the generation stamp,
// which authors may supply but which is always discarded.
//
// Field order in every slice is display-significant and is preserved
// through validation and publishing.
type MarketContent struct {
	// GeneratedAt is accepted from authored input but never trusted.
	GeneratedAt string     `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	KPIs        []KPI      `json:"kpis" yaml:"kpis" validate:"required,unique=Key,dive"`
	Series      []Series   `json:"series" yaml:"series" validate:"required,unique=Key,dive"`
	Refs        []Citation `json:"refs" yaml:"refs" validate:"required,unique=ID,dive"`
}

// KPI is a labelled key-performance-indicator display record.
type KPI struct {
	Key   string `json:"key" yaml:"key" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required"`
	// Value is a display string and is not necessarily numeric.
	Value string `json:"value" yaml:"value" validate:"required"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Series is a named, optionally unit-labelled sequence of date/value points.
type Series struct {
	Key    string  `json:"key" yaml:"key" validate:"required"`
	Label  string  `json:"label" yaml:"label" validate:"required"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Points []Point `json:"points" yaml:"points" validate:"required,min=1,dive"`
}

// Point is a single observation in a Series.
type Point struct {
	// T is a date-like label; only its length is checked.
	T string `json:"t" yaml:"t" validate:"required,min=8"`
	// V is a pointer so that an absent value can be told apart from zero.
	// It must be finite: JSON has no representation for Inf or NaN.
	V *float64 `json:"v" yaml:"v" validate:"required,finite"`
}

// Citation is a bibliographic reference backing a KPI or series claim.
type Citation struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Title     string `json:"title" yaml:"title" validate:"required"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
}

// MarketDataArtifact is the published unit the website fetches at runtime.
type MarketDataArtifact struct {
	GeneratedAt string     `json:"generated_at"`
	KPIs        []KPI      `json:"kpis"`
	Series      []Series   `json:"series"`
	Refs        []Citation `json:"refs"`
}

// Stamp produces the artifact for this content generated at the given
// ISO-8601 timestamp. Any authored GeneratedAt is discarded.
func (c *MarketContent) Stamp(generatedAt string) *MarketDataArtifact {
	return &MarketDataArtifact{
		GeneratedAt: generatedAt,
		KPIs:        nonNil(c.KPIs),
		Series:      nonNil(c.Series),
		Refs:        nonNil(c.Refs),
	}
}

// nonNil keeps empty lists serialised as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
