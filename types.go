package rawexplorer

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// ParseSeverity parses "ignore", "warn" or "error".
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "", "ignore":
		return Ignore, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	default:
		return Ignore, false
	}
}

// BuildOpt bundles options for building a value tree from a Source. The zero
// value disables every check.
type BuildOpt struct {
	OnDuplicateKey Severity // duplicate keys keep the last value unless Error
	MaxDepth       int      // 0 means unlimited
	MaxBytes       int64    // 0 means unlimited
	// IssueSink receives warnings (duplicate keys in Warn mode).
	IssueSink func(Issue)
}
