package diag

// Kind categorizes annotation diagnostics for programmatic handling
type Kind string

const (
	InvalidFormat   Kind = "InvalidFormat"   // Malformed syntax shape
	Multiple        Kind = "Multiple"        // More than one annotation block on a field
	NonStruct       Kind = "NonStruct"       // Aggregate is not a named-field struct
	UnexpectedMode  Kind = "UnexpectedMode"  // Unknown tag name
	UnexpectedParam Kind = "UnexpectedParam" // Unknown parameter name
	Bullet          Kind = "Bullet"          // Bullet wrapping more than one tag
	AlreadyDefined  Kind = "AlreadyDefined"  // Duplicate parameter, child list or event name
	ParseError      Kind = "ParseError"      // Literal cannot be coerced to the slot type
	MissingParam    Kind = "MissingParam"    // Required parameter absent
)

var kindMessages = map[Kind]string{
	InvalidFormat:   "invalid annotation format",
	Multiple:        "field carries more than one annotation block",
	NonStruct:       "only structs with named fields can be annotated",
	UnexpectedMode:  "unknown tag",
	UnexpectedParam: "unexpected parameter",
	Bullet:          "bullet can wrap at most one tag",
	AlreadyDefined:  "already defined",
	ParseError:      "cannot parse literal",
	MissingParam:    "missing required parameter",
}

// Message returns the default human-readable message for the kind
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "annotation error"
}

// Kinds lists every diagnostic kind in declaration order
func Kinds() []Kind {
	return []Kind{
		InvalidFormat, Multiple, NonStruct, UnexpectedMode, UnexpectedParam,
		Bullet, AlreadyDefined, ParseError, MissingParam,
	}
}
