package diag

// Kind defines the severity of a log entry.
type Kind uint8

const (
	// KindError reports a failure that aborted an operation.
	KindError Kind = iota
	// KindWarning reports a problem the operation survived.
	KindWarning
	KindNotice
)

// Tag returns the short label printed in brackets before the title.
func (k Kind) Tag() string {
	switch k {
	case KindError:
		return "err"
	case KindWarning:
		return "warn"
	case KindNotice:
		return "note"
	}
	return "unknown"
}

func (k Kind) String() string {
	switch k {
	case KindError:
		return "ERROR"
	case KindWarning:
		return "WARNING"
	case KindNotice:
		return "NOTICE"
	}
	return "UNKNOWN"
}

// Visibility controls whether a description line is printed by default.
type Visibility uint8

const (
	// Normal lines are always printed.
	Normal Visibility = iota
	// Optional lines are printed only in the details follow-up notice.
	Optional
)

// Invert swaps Normal and Optional.
func (v Visibility) Invert() Visibility {
	if v == Normal {
		return Optional
	}
	return Normal
}

func (v Visibility) String() string {
	if v == Optional {
		return "optional"
	}
	return "normal"
}
