package console

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// DefaultLimit is the log limit used when nothing else is configured.
const DefaultLimit uint32 = 20

// NoLimitLiteral is the option value meaning Unlimited.
const NoLimitLiteral = "no"

// Limit caps the number of entries a Reporter prints.
type Limit struct {
	n       uint32
	limited bool
}

func Unlimited() Limit { return Limit{} }

func Limited(n uint32) Limit { return Limit{n: n, limited: true} }

// Max returns the bound and whether there is one.
func (l Limit) Max() (uint32, bool) {
	return l.n, l.limited
}

func (l Limit) String() string {
	if !l.limited {
		return "[no limit]"
	}
	return strconv.FormatUint(uint64(l.n), 10)
}

// ParseLimit accepts NoLimitLiteral or a non-negative decimal integer.
func ParseLimit(s string) (Limit, error) {
	s = strings.TrimSpace(s)
	if s == NoLimitLiteral {
		return Unlimited(), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Limit{}, fmt.Errorf("invalid log limit %q: expected a non-negative integer or %q", s, NoLimitLiteral)
	}
	n, err := safecast.Conv[uint32](v)
	if err != nil {
		return Limit{}, fmt.Errorf("invalid log limit %q: %w", s, err)
	}
	return Limited(n), nil
}
