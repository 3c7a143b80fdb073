package tracekit

import (
	"github.com/gobwas/glob"
)

// RecordSelector decides whether a record belongs to a selection.
//
// Selectors compose with And, Or and Not, so callers can express things
// like "loaded sac records whose name matches *.z":
//
//	sel := tracekit.And(
//		tracekit.ByFormat(tracekit.FormatSAC),
//		tracekit.Loaded(),
//		tracekit.ByName("*.z"),
//	)
//	picked := tracekit.Select(records, sel)
type RecordSelector interface {
	// Match reports whether the record is selected.
	Match(r *Record) bool
}

// Select returns the records matched by the selector, preserving order.
// Records are shared with the input set, not copied.
func Select(set RecordSet, sel RecordSelector) RecordSet {
	if sel == nil {
		return nil
	}
	var out RecordSet
	for _, r := range set {
		if r != nil && sel.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// All selects every record.
func All() RecordSelector {
	return FuncSelector(func(*Record) bool { return true })
}

// ByName selects records whose name matches a glob pattern. An invalid
// pattern matches nothing.
func ByName(pattern string) RecordSelector {
	g, err := glob.Compile(pattern)
	if err != nil {
		return FuncSelector(func(*Record) bool { return false })
	}
	return FuncSelector(func(r *Record) bool { return g.Match(r.Name) })
}

// ByFormat selects records of the given format type.
func ByFormat(formatType string) RecordSelector {
	return FuncSelector(func(r *Record) bool { return r.FormatType == formatType })
}

// Loaded selects records whose data section is in memory.
func Loaded() RecordSelector {
	return FuncSelector(func(r *Record) bool { return r.HasData })
}

// And selects records matched by every selector.
func And(selectors ...RecordSelector) RecordSelector {
	return FuncSelector(func(r *Record) bool {
		for _, s := range selectors {
			if s == nil || !s.Match(r) {
				return false
			}
		}
		return true
	})
}

// Or selects records matched by at least one selector.
func Or(selectors ...RecordSelector) RecordSelector {
	return FuncSelector(func(r *Record) bool {
		for _, s := range selectors {
			if s != nil && s.Match(r) {
				return true
			}
		}
		return false
	})
}

// Not inverts a selector.
func Not(sel RecordSelector) RecordSelector {
	return FuncSelector(func(r *Record) bool {
		return sel != nil && !sel.Match(r)
	})
}

// FuncSelector adapts a plain function to the RecordSelector interface.
type FuncSelector func(r *Record) bool

// Match implements RecordSelector.
func (f FuncSelector) Match(r *Record) bool {
	return f(r)
}
