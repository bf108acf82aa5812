package mapping

import "osmapping/internal/codec"

// DynamicMapping controls how unmapped fields of incoming documents are treated.
type DynamicMapping string

const (
	DynamicTrue    DynamicMapping = "true"
	DynamicFalse   DynamicMapping = "false"
	DynamicStrict  DynamicMapping = "strict"
	DynamicRuntime DynamicMapping = "runtime"
)

func (d DynamicMapping) String() string {
	return string(d)
}

func (d DynamicMapping) IsValid() bool {
	switch d {
	case DynamicTrue, DynamicFalse, DynamicStrict, DynamicRuntime:
		return true
	}

	return false
}

// decodeDynamicMapping accepts the JSON booleans as well as the string forms.
func decodeDynamicMapping(v *codec.Value) (DynamicMapping, error) {
	if v.Token() == codec.TokenBool {
		b, err := codec.Bool(v)
		if err != nil {
			return "", err
		}

		if b {
			return DynamicTrue, nil
		}

		return DynamicFalse, nil
	}

	return codec.Enum[DynamicMapping](v)
}

// IndexOptions selects what an inverted index stores per term.
type IndexOptions string

const (
	IndexOptionsDocs      IndexOptions = "docs"
	IndexOptionsFreqs     IndexOptions = "freqs"
	IndexOptionsPositions IndexOptions = "positions"
	IndexOptionsOffsets   IndexOptions = "offsets"
)

func (o IndexOptions) String() string {
	return string(o)
}

func (o IndexOptions) IsValid() bool {
	switch o {
	case IndexOptionsDocs, IndexOptionsFreqs, IndexOptionsPositions, IndexOptionsOffsets:
		return true
	}

	return false
}

// TermVectorOption selects what term vectors record.
type TermVectorOption string

const (
	TermVectorNo                          TermVectorOption = "no"
	TermVectorYes                         TermVectorOption = "yes"
	TermVectorWithOffsets                 TermVectorOption = "with_offsets"
	TermVectorWithPositions               TermVectorOption = "with_positions"
	TermVectorWithPositionsOffsets        TermVectorOption = "with_positions_offsets"
	TermVectorWithPositionsOffsetsPayload TermVectorOption = "with_positions_offsets_payloads"
	TermVectorWithPositionsPayloads       TermVectorOption = "with_positions_payloads"
)

func (o TermVectorOption) String() string {
	return string(o)
}

func (o TermVectorOption) IsValid() bool {
	switch o {
	case TermVectorNo, TermVectorYes, TermVectorWithOffsets, TermVectorWithPositions,
		TermVectorWithPositionsOffsets, TermVectorWithPositionsOffsetsPayload, TermVectorWithPositionsPayloads:
		return true
	}

	return false
}

// OnScriptError decides what happens to a document whose runtime script fails.
type OnScriptError string

const (
	OnScriptErrorFail     OnScriptError = "fail"
	OnScriptErrorContinue OnScriptError = "continue"
)

func (o OnScriptError) String() string {
	return string(o)
}

func (o OnScriptError) IsValid() bool {
	return o == OnScriptErrorFail || o == OnScriptErrorContinue
}

// GeoOrientation is the vertex order of polygons. Both the canonical names
// and their aliases are accepted and written back unchanged.
type GeoOrientation string

const (
	GeoOrientationRight            GeoOrientation = "right"
	GeoOrientationCounterclockwise GeoOrientation = "counterclockwise"
	GeoOrientationCCW              GeoOrientation = "ccw"
	GeoOrientationLeft             GeoOrientation = "left"
	GeoOrientationClockwise        GeoOrientation = "clockwise"
	GeoOrientationCW               GeoOrientation = "cw"
)

func (o GeoOrientation) String() string {
	return string(o)
}

func (o GeoOrientation) IsValid() bool {
	switch o {
	case GeoOrientationRight, GeoOrientationCounterclockwise, GeoOrientationCCW,
		GeoOrientationLeft, GeoOrientationClockwise, GeoOrientationCW:
		return true
	}

	return false
}

// Canonical folds the aliases into "right" or "left".
func (o GeoOrientation) Canonical() GeoOrientation {
	switch o {
	case GeoOrientationCounterclockwise, GeoOrientationCCW:
		return GeoOrientationRight
	case GeoOrientationClockwise, GeoOrientationCW:
		return GeoOrientationLeft
	default:
		return o
	}
}

// GeoStrategy is the indexing approach of a geo_shape field.
type GeoStrategy string

const (
	GeoStrategyRecursive GeoStrategy = "recursive"
	GeoStrategyTerm      GeoStrategy = "term"
)

func (s GeoStrategy) String() string {
	return string(s)
}

func (s GeoStrategy) IsValid() bool {
	return s == GeoStrategyRecursive || s == GeoStrategyTerm
}

// TimeSeriesMetricType marks a field as a time series metric.
type TimeSeriesMetricType string

const (
	TimeSeriesMetricGauge     TimeSeriesMetricType = "gauge"
	TimeSeriesMetricCounter   TimeSeriesMetricType = "counter"
	TimeSeriesMetricSummary   TimeSeriesMetricType = "summary"
	TimeSeriesMetricHistogram TimeSeriesMetricType = "histogram"
	TimeSeriesMetricPosition  TimeSeriesMetricType = "position"
)

func (t TimeSeriesMetricType) String() string {
	return string(t)
}

func (t TimeSeriesMetricType) IsValid() bool {
	switch t {
	case TimeSeriesMetricGauge, TimeSeriesMetricCounter, TimeSeriesMetricSummary,
		TimeSeriesMetricHistogram, TimeSeriesMetricPosition:
		return true
	}

	return false
}

// NumericFielddataFormat is the in-memory layout of numeric field data.
type NumericFielddataFormat string

const (
	NumericFielddataArray    NumericFielddataFormat = "array"
	NumericFielddataDisabled NumericFielddataFormat = "disabled"
)

func (f NumericFielddataFormat) IsValid() bool {
	return f == NumericFielddataArray || f == NumericFielddataDisabled
}

// MatchType selects how dynamic template patterns are interpreted.
type MatchType string

const (
	MatchTypeSimple MatchType = "simple"
	MatchTypeRegex  MatchType = "regex"
)

func (m MatchType) IsValid() bool {
	return m == MatchTypeSimple || m == MatchTypeRegex
}
