package controller

import (
	"fmt"

	"listgrip/internal/domain"
	"listgrip/internal/logic"
)

// ChainMode tells whether a run of Shift+arrow presses is growing or
// shrinking the selection
type ChainMode int

const (
	ChainIdle ChainMode = iota
	ChainGrowing
	ChainShrinking
)

func (m ChainMode) String() string {
	switch m {
	case ChainGrowing:
		return "growing"
	case ChainShrinking:
		return "shrinking"
	default:
		return "idle"
	}
}

// ShiftChain is the state kept while the range modifier is held
type ShiftChain struct {
	Mode ChainMode
	Dir  logic.Direction
}

func (s ShiftChain) String() string {
	if s.Mode == ChainIdle {
		return "idle"
	}
	return fmt.Sprintf("%s(%s)", s.Mode, s.Dir)
}

// Begin is the chain a keypress in dir continues from: pressing against the
// remembered direction starts over
func (s ShiftChain) Begin(dir logic.Direction) ShiftChain {
	if s.Dir != logic.DirectionNone && s.Dir != dir {
		return ShiftChain{}
	}
	return s
}

// After is the chain once a keypress in dir has been resolved to next.
// A chain left idle starts growing.
func (s ShiftChain) After(next ChainMode, dir logic.Direction) ShiftChain {
	if next == ChainIdle {
		next = ChainGrowing
	}
	return ShiftChain{Mode: next, Dir: dir}
}

// Release is the chain after the range modifier is let go
func (s ShiftChain) Release() ShiftChain {
	return ShiftChain{}
}

// chainAction is what a Shift+arrow press does to the candidates
type chainAction int

const (
	chainPass          chainAction = iota // focus and target already are the endpoints
	chainSkipRun                          // jump the target past a selected run
	chainShrinkReset                      // last step back: unselect the focus, start over
	chainUnselectFocus                    // shrinking: unselect the focus
	chainAdoptFocus                       // select the focus, target counts as unselected
	chainCollapse                         // select the focus only
	chainExtend                           // select the target
)

var chainActionNames = map[chainAction]string{
	chainPass:          "pass",
	chainSkipRun:       "skipRun",
	chainShrinkReset:   "shrinkReset",
	chainUnselectFocus: "unselectFocus",
	chainAdoptFocus:    "adoptFocus",
	chainCollapse:      "collapse",
	chainExtend:        "extend",
}

func (a chainAction) String() string {
	return chainActionNames[a]
}

// chainInput is the selection shape a Shift+arrow press is decided on
type chainInput struct {
	focusSelected  bool
	targetSelected bool
	beyondSelected bool // the item one step past the target
	count          int
	mode           ChainMode
}

// chainRule is one row of the decision table; rows are tried in order
type chainRule struct {
	when   func(in chainInput) bool
	action chainAction
	// mode is the chain mode the row leaves behind
	mode func(in chainInput) ChainMode
}

func keepMode(in chainInput) ChainMode { return in.mode }
func resetMode(chainInput) ChainMode   { return ChainIdle }

var chainRules = []chainRule{
	{
		when:   func(in chainInput) bool { return !in.focusSelected && in.targetSelected && in.count > 1 },
		action: chainPass,
		mode:   keepMode,
	},
	{
		when:   func(in chainInput) bool { return in.mode == ChainGrowing && in.targetSelected },
		action: chainSkipRun,
		mode:   keepMode,
	},
	{
		when:   func(in chainInput) bool { return in.targetSelected && in.focusSelected && !in.beyondSelected },
		action: chainShrinkReset,
		mode:   resetMode,
	},
	{
		when:   func(in chainInput) bool { return in.targetSelected && in.focusSelected },
		action: chainUnselectFocus,
		mode: func(in chainInput) ChainMode {
			if in.mode == ChainIdle {
				return ChainShrinking
			}
			return in.mode
		},
	},
	{
		when:   func(in chainInput) bool { return !in.focusSelected && in.targetSelected },
		action: chainAdoptFocus,
		mode:   keepMode,
	},
	{
		when:   func(in chainInput) bool { return !in.focusSelected && !in.targetSelected },
		action: chainCollapse,
		mode:   keepMode,
	},
	{
		when:   func(chainInput) bool { return true },
		action: chainExtend,
		mode:   keepMode,
	},
}

// decideChain looks up the action for in and the chain mode it leaves
func decideChain(in chainInput) (chainAction, ChainMode) {
	for _, r := range chainRules {
		if r.when(in) {
			return r.action, r.mode(in)
		}
	}
	return chainExtend, in.mode
}

// shiftStep resolves a Shift+arrow press. p holds the target found by the
// key and the candidates {target}; both may be rewritten.
func (c *Controller) shiftStep(p *params, dir logic.Direction) {
	chain := c.chain.Begin(dir)

	in := chainInput{
		focusSelected:  c.state.IsSelected(c.focus),
		targetSelected: c.state.IsSelected(p.target),
		beyondSelected: c.state.IsSelected(c.nav.Sibling(p.target, dir)),
		count:          c.state.Count(),
		mode:           chain.Mode,
	}
	action, mode := decideChain(in)

	switch action {
	case chainSkipRun:
		next := c.nav.SkipWhile(p.target, dir, c.state.IsSelected)
		if next != nil {
			p.target = next
			p.items = []*domain.Item{next}
		} else {
			// the run reaches the edge: only the focus moves
			p.items = nil
		}
	case chainShrinkReset, chainUnselectFocus:
		p.items = []*domain.Item{c.focus}
	case chainAdoptFocus:
		p.items = []*domain.Item{c.focus}
		p.targetWasSelected = false
		p.targetProbed = true
	case chainCollapse:
		p.target = c.focus
		p.items = []*domain.Item{c.focus}
	}

	c.chain = chain.After(mode, dir)
}
