package mapping

import (
	"fmt"
	"sort"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the variant held by a Property. Its string form is the
// "type" discriminator used on the wire.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as the invalid kind

	KindAggregateMetricDouble // aggregate_metric_double
	KindBinary                // binary
	KindBoolean               // boolean
	KindByte                  // byte
	KindCompletion            // completion
	KindConstantKeyword       // constant_keyword
	KindDateNanos             // date_nanos
	KindDate                  // date
	KindDateRange             // date_range
	KindDenseVector           // dense_vector
	KindDouble                // double
	KindDoubleRange           // double_range
	KindAlias                 // alias
	KindFlattened             // flattened
	KindFloat                 // float
	KindFloatRange            // float_range
	KindGeoPoint              // geo_point
	KindGeoShape              // geo_shape
	KindHalfFloat             // half_float
	KindHistogram             // histogram
	KindInteger               // integer
	KindIntegerRange          // integer_range
	KindIP                    // ip
	KindIPRange               // ip_range
	KindJoin                  // join
	KindKeyword               // keyword
	KindLong                  // long
	KindLongRange             // long_range
	KindMurmur3               // murmur3
	KindNested                // nested
	KindObject                // object
	KindPercolator            // percolator
	KindPoint                 // point
	KindRankFeature           // rank_feature
	KindRankFeatures          // rank_features
	KindScaledFloat           // scaled_float
	KindSearchAsYouType       // search_as_you_type
	KindShape                 // shape
	KindShort                 // short
	KindText                  // text
	KindTokenCount            // token_count
	KindUnsignedLong          // unsigned_long
	KindVersion               // version
	KindWildcard              // wildcard

	// KindTotal is the number of kinds, counting the invalid zero value.
	KindTotal = int(iota)
)

var kindsByTag = func() map[string]Kind {
	m := make(map[string]Kind, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		m[k.String()] = k
	}

	return m
}()

// ParseKind returns the kind whose discriminator is tag.
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindsByTag[tag]
	return k, ok
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		out = append(out, k)
	}

	return out
}

// Tags returns every discriminator, sorted.
func Tags() []string {
	tags := make([]string, 0, len(kindsByTag))
	for tag := range kindsByTag {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInteger, KindLong, KindUnsignedLong,
		KindHalfFloat, KindFloat, KindDouble, KindScaledFloat:
		return true
	}
}

func (k Kind) IsRange() bool {
	switch k {
	default:
		return false
	case KindDateRange, KindDoubleRange, KindFloatRange, KindIntegerRange, KindIPRange, KindLongRange:
		return true
	}
}

// IsObjectLike reports whether the kind groups sub-properties rather than
// holding a value of its own.
func (k Kind) IsObjectLike() bool {
	return k == KindObject || k == KindNested
}

// IsTextual reports whether the kind holds analyzed or exact string values.
func (k Kind) IsTextual() bool {
	switch k {
	default:
		return false
	case KindText, KindKeyword, KindConstantKeyword, KindWildcard, KindSearchAsYouType, KindCompletion:
		return true
	}
}

// TypeName returns the Go type name of the variant, e.g. "KeywordProperty".
func (k Kind) TypeName() string {
	return kindTypeName(k)
}

// Traits returns the trait levels the variant inherits from, root first.
func (k Kind) Traits() []string {
	return kindTraitChain(k)
}

// Fields describes the keys accepted by the variant, inherited ones first.
// The "type" discriminator is not listed.
func (k Kind) Fields() []FieldInfo {
	fields := variantFields(k)

	out := make([]FieldInfo, len(fields))
	for i, f := range fields {
		out[i] = FieldInfo{Name: f.Name, Type: f.Type.String(), Required: f.Required}
	}

	return out
}

// FieldInfo describes one key accepted by a variant.
type FieldInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// MarshalText writes the discriminator.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText reads a discriminator.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return &UnknownVariantError{Discriminator: string(text), Suggestion: suggestTag(string(text))}
	}

	*k = parsed

	return nil
}
