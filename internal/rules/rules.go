// Package rules consumes declarative validation-rule descriptors and
// translates them into schema constraints for the generated API contracts.
// It only describes constraints for documentation; enforcement happens in
// the request pipeline and may drift from what is documented.
package rules

// Kind tags a rule variant. The custom constraint kinds (max-size,
// content-types, extensions) carry explicit fields instead of being probed
// reflectively; the set of such kinds is small and closed in practice.
type Kind string

const (
	KindNotEmpty       Kind = "not-empty"
	KindMaxLength      Kind = "max-length"
	KindMinLength      Kind = "min-length"
	KindLengthRange    Kind = "length-range"
	KindComparison     Kind = "comparison"
	KindBetween        Kind = "between"
	KindEmail          Kind = "email"
	KindCreditCard     Kind = "credit-card"
	KindRegex          Kind = "regex"
	KindEnumOf         Kind = "enum-of"
	KindEquality       Kind = "equality"
	KindScalePrecision Kind = "scale-precision"
	KindMaxSize        Kind = "max-size"
	KindContentTypes   Kind = "content-types"
	KindExtensions     Kind = "extensions"
)

// Op is a comparison or equality operator.
type Op string

const (
	OpGreaterThan    Op = ">"
	OpGreaterOrEqual Op = ">="
	OpLessThan       Op = "<"
	OpLessOrEqual    Op = "<="
	OpEqual          Op = "=="
	OpNotEqual       Op = "!="
)

// Rule is one declarative constraint on a member. Only the fields relevant
// to the Kind are populated; use the constructors.
type Rule struct {
	Kind Kind

	Op    Op
	Bound float64

	Low  float64
	High float64

	MinLen uint64
	MaxLen uint64

	Pattern string

	Members []string

	Target any

	Scale     int
	Precision int

	MaxSizeBytes uint64
	ContentTypes []string
	Extensions   []string
}

func NotEmpty() Rule { return Rule{Kind: KindNotEmpty} }

func MaxLength(n uint64) Rule { return Rule{Kind: KindMaxLength, MaxLen: n} }

func MinLength(n uint64) Rule { return Rule{Kind: KindMinLength, MinLen: n} }

func LengthRange(lo, hi uint64) Rule {
	return Rule{Kind: KindLengthRange, MinLen: lo, MaxLen: hi}
}

func Comparison(op Op, bound float64) Rule {
	return Rule{Kind: KindComparison, Op: op, Bound: bound}
}

func Between(low, high float64) Rule {
	return Rule{Kind: KindBetween, Low: low, High: high}
}

func Email() Rule { return Rule{Kind: KindEmail} }

func CreditCard() Rule { return Rule{Kind: KindCreditCard} }

func Regex(pattern string) Rule { return Rule{Kind: KindRegex, Pattern: pattern} }

// EnumOf documents the allowed members of an enumerated type.
func EnumOf(members ...string) Rule { return Rule{Kind: KindEnumOf, Members: members} }

func Equality(op Op, target any) Rule {
	return Rule{Kind: KindEquality, Op: op, Target: target}
}

func ScalePrecision(scale, precision int) Rule {
	return Rule{Kind: KindScalePrecision, Scale: scale, Precision: precision}
}

func MaxSize(bytes uint64) Rule { return Rule{Kind: KindMaxSize, MaxSizeBytes: bytes} }

func AllowedContentTypes(types ...string) Rule {
	return Rule{Kind: KindContentTypes, ContentTypes: types}
}

func AllowedExtensions(exts ...string) Rule {
	return Rule{Kind: KindExtensions, Extensions: exts}
}

// Descriptor maps a member name to its ordered list of constraint rules.
// Member names use the declaring type's casing convention, which may differ
// from the schema's property-name casing.
type Descriptor map[string][]Rule
