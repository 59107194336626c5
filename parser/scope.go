package parser

type label struct {
	name      string
	iteration bool
}

// scope holds the context a statement is parsed in. A new scope is opened
// for every function body; labels never cross a function boundary.
type scope struct {
	outer       *scope
	allowIn     bool
	inFunction  bool
	inIteration bool
	inSwitch    bool

	labels []label
	// labelChain counts the labels directly in front of the statement about
	// to be parsed.
	labelChain int
}

func (p *parser) openScope(inFunction bool) {
	p.scope = &scope{
		outer:      p.scope,
		allowIn:    true,
		inFunction: inFunction,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (s *scope) lookupLabel(name string) (label, bool) {
	for i := len(s.labels) - 1; i >= 0; i-- {
		if s.labels[i].name == name {
			return s.labels[i], true
		}
	}
	return label{}, false
}

func (s *scope) hasLabel(name string) bool {
	_, ok := s.lookupLabel(name)
	return ok
}

// markIterationLabels flags the innermost n labels as labelling a loop.
func (s *scope) markIterationLabels(n int) {
	for i := len(s.labels) - n; i < len(s.labels); i++ {
		s.labels[i].iteration = true
	}
}
