// File: layout.go
// Title: Pattern Compiler
// Description: Compiles strftime-like patterns into token lists and the
//              matching parse expression. Compiled layouts are cached.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jtime

import (
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	mdwlog "github.com/msto63/jcal/foundation/core/log"
)

// CenturyPrefix is added to two digit years when parsing
const CenturyPrefix = 1300

// Kind identifies a token
type Kind int

const (
	KindLiteral Kind = iota
	KindYear4
	KindYear2
	KindMonth
	KindMonthUnpadded
	KindMonthName
	KindDay
	KindDayUnpadded
	KindHour24
	KindHour12
	KindMinute
	KindSecond
	KindPeriod
	KindZoneOffset
	KindZoneName
)

var kindNames = [...]string{
	"literal", "year4", "year2", "month", "month-unpadded", "month-name",
	"day", "day-unpadded", "hour24", "hour12", "minute", "second",
	"period", "zone-offset", "zone-name",
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsDate reports whether the kind is rendered by the calendar date
func (k Kind) IsDate() bool {
	return k >= KindYear4 && k <= KindDayUnpadded
}

var directives = map[byte]Kind{
	'Y': KindYear4,
	'y': KindYear2,
	'm': KindMonth,
	'B': KindMonthName,
	'd': KindDay,
	'H': KindHour24,
	'I': KindHour12,
	'M': KindMinute,
	'S': KindSecond,
	'p': KindPeriod,
	'z': KindZoneOffset,
	'Z': KindZoneName,
}

// capture expressions; %z and %Z are not consumed
var captures = map[Kind]string{
	KindYear4:         `(\d{4})`,
	KindYear2:         `(\d{2})`,
	KindMonth:         `(\d{1,2})`,
	KindMonthUnpadded: `(\d{1,2})`,
	KindMonthName:     `([\x{0600}-\x{06FF}\x{200C}\p{L}\s]+)`,
	KindDay:           `(\d{1,2})`,
	KindDayUnpadded:   `(\d{1,2})`,
	KindHour24:        `(\d{1,2})`,
	KindHour12:        `(\d{1,2})`,
	KindMinute:        `(\d{1,2})`,
	KindSecond:        `(\d{1,2})`,
	KindPeriod:        `([\x{0600}-\x{06FF}.]+|[APMapm.]{2,})`,
}

// Token is one element of a compiled pattern. Text holds the literal text
// or the directive as written, e.g. "%Y".
type Token struct {
	Kind Kind
	Text string
}

// Layout is a compiled pattern. It is immutable and safe for concurrent use.
type Layout struct {
	pattern string
	tokens  []Token
	re      *regexp.Regexp
	groups  []Kind // capture group i+1 holds groups[i]
}

// Pattern returns the source pattern
func (l *Layout) Pattern() string { return l.pattern }

// Tokens returns a copy of the token list
func (l *Layout) Tokens() []Token {
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

// Has reports whether the layout contains a directive of kind k
func (l *Layout) Has(k Kind) bool {
	for _, t := range l.tokens {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Expression returns the anchored parse expression
func (l *Layout) Expression() string {
	return l.re.String()
}

var (
	layoutCache sync.Map // pattern -> *Layout
	pkgLogger   atomic.Pointer[mdwlog.Logger]
)

// SetLogger sets the logger used for compile tracing. nil restores the
// package default logger.
func SetLogger(logger *mdwlog.Logger) {
	pkgLogger.Store(logger)
}

func logger() *mdwlog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return mdwlog.GetDefault().WithName("jtime")
}

// Compile returns the cached layout for pattern, compiling it on first use.
// Every pattern compiles; unknown directives become literal text.
func Compile(pattern string) *Layout {
	if cached, ok := layoutCache.Load(pattern); ok {
		return cached.(*Layout)
	}

	l := compile(pattern)
	actual, loaded := layoutCache.LoadOrStore(pattern, l)
	if !loaded {
		logger().Trace("layout compiled", mdwlog.Fields{
			"pattern": pattern,
			"tokens":  len(l.tokens),
			"regexp":  l.re.String(),
		})
	}
	return actual.(*Layout)
}

func compile(pattern string) *Layout {
	l := &Layout{pattern: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			l.tokens = append(l.tokens, Token{Kind: KindLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			lit.WriteByte(c)
			continue
		}

		next := pattern[i+1]
		if next == '%' {
			lit.WriteByte('%')
			i++
			continue
		}
		if next == '-' && i+2 < len(pattern) && (pattern[i+2] == 'm' || pattern[i+2] == 'd') {
			kind := KindMonthUnpadded
			if pattern[i+2] == 'd' {
				kind = KindDayUnpadded
			}
			flush()
			l.tokens = append(l.tokens, Token{Kind: kind, Text: pattern[i : i+3]})
			i += 2
			continue
		}
		if kind, ok := directives[next]; ok {
			flush()
			l.tokens = append(l.tokens, Token{Kind: kind, Text: pattern[i : i+2]})
			i++
			continue
		}

		// unknown directive, kept verbatim
		lit.WriteByte(c)
		lit.WriteByte(next)
		i++
	}
	flush()

	var expr strings.Builder
	expr.WriteString("^")
	for _, t := range l.tokens {
		if capture, ok := captures[t.Kind]; ok {
			expr.WriteString(capture)
			l.groups = append(l.groups, t.Kind)
			continue
		}
		// literals, %z and %Z
		expr.WriteString(regexp.QuoteMeta(t.Text))
	}
	l.re = regexp.MustCompile(expr.String())

	return l
}
