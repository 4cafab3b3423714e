package types

// LineMatcher decides whether a line must be removed from a corpus.
type LineMatcher interface {
	Match(line string) bool
}

// LineMatcherFunc adapts a plain function to the LineMatcher interface.
type LineMatcherFunc func(line string) bool

func (f LineMatcherFunc) Match(line string) bool {
	return f(line)
}
