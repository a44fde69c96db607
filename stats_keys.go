package markup

// KeyPrefix is the prefix of every key recorded by this library.
// Callers adding their own counters should use a different prefix.
const KeyPrefix = "markup:"

// StatKey names a counter in [Stats].
type StatKey string

// Formatting call counters.
const (
	KeyFormatCalls    StatKey = "markup:format_calls"
	KeyFormatCallsFor StatKey = "markup:format_calls:" // + action name
	KeyMathCalls      StatKey = "markup:math_calls"
	KeyPlaceholders   StatKey = "markup:placeholders"
)

// Anomaly counters for inputs the engine had to repair or ignore.
const (
	KeyRangeAdjusted StatKey = "markup:range_adjusted"
	KeyUnknownAction StatKey = "markup:unknown_action"
)

// For appends a qualifier (such as an action name) to a prefix key.
func (k StatKey) For(name string) StatKey {
	return k + StatKey(name)
}
