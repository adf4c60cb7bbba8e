package latin

// Difficulty classifies the outcome of a Solve call: either the highest
// deduction technique required to finish the puzzle, or a terminal outcome
// that is not a successful unique solve.
type Difficulty int

const (
	// Impossible means no assignment of digits satisfies the clues.
	Impossible Difficulty = iota
	// Simple means naked-single and positional (hidden-single) elimination
	// alone solved the puzzle.
	Simple
	// SetElim means naked or hidden subset elimination was required.
	SetElim
	// Extreme means a row/column X-wing-style elimination was required.
	Extreme
	// Forcing means a bivalue forcing chain was required.
	Forcing
	// Recursion means backtracking search was required to find the unique
	// solution.
	Recursion
	// Ambiguous means backtracking search found two or more solutions.
	Ambiguous
	// Unfinished means the deduction ladder got stuck before reaching
	// Options.MaxDiff and backtracking was not permitted to continue —
	// this is not a verdict on the puzzle, just on the budget given to
	// Solve.
	Unfinished
)

// String renders a Difficulty for logs and test failure messages.
func (d Difficulty) String() string {
	switch d {
	case Impossible:
		return "impossible"
	case Simple:
		return "simple"
	case SetElim:
		return "set-elim"
	case Extreme:
		return "extreme"
	case Forcing:
		return "forcing"
	case Recursion:
		return "recursion"
	case Ambiguous:
		return "ambiguous"
	case Unfinished:
		return "unfinished"
	default:
		return "unknown"
	}
}

// Options configures Solve.
type Options struct {
	// MaxDiff caps how hard a technique Solve may reach for. Zero means
	// Recursion (the highest useful tier — Ambiguous/Unfinished are
	// outcomes, not requestable tiers).
	MaxDiff Difficulty

	// MaxDepth caps backtracking recursion depth; 0 means unbounded. When
	// the bound is hit before a solution is found, Solve returns
	// Unfinished rather than continuing to recurse.
	MaxDepth int

	// Validator, if non-nil, is called on a completed candidate grid
	// before Solve accepts it as a solution; a false result is treated the
	// same as a contradiction discovered by constraint propagation. This
	// lets a caller layer puzzle-specific rules (e.g. killer-cage sums) on
	// top of the plain Latin-square constraint without forking the solver.
	Validator func(grid []int, o int) bool

	// Deductions holds caller-supplied deduction hooks, indexed by the
	// Difficulty tier they run at (Deductions[SetElim] runs alongside the
	// built-in naked/hidden-set pass, and so on). A hook reports whether it
	// removed any candidate or placed any digit, the same contract as the
	// built-in deduction passes; the driver loop records its tier as
	// reached and restarts the ladder from Simple whenever a hook reports
	// progress. This is what lets a puzzle-specific back-end (e.g. killer-
	// sudoku cage elimination) plug a technique into the ladder instead of
	// being limited to a final full-grid Validator check. Indices beyond
	// len(Deductions)-1, or a nil entry, are treated as "no hook at this
	// tier", not as a contradiction.
	Deductions []func(*State) (bool, error)
}

func (o Options) maxDiff() Difficulty {
	if o.MaxDiff == Impossible {
		return Recursion
	}
	return o.MaxDiff
}
