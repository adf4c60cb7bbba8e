package latin

// Solve runs the deduction ladder (and, if permitted by opts.MaxDiff,
// backtracking search) against grid (an order-o clue grid, 0 = blank).
//
// It returns the Difficulty reached, the solved grid if a unique solution
// was found, and a non-nil error only for malformed input (see
// ErrInvalidOrder/ErrInvalidGrid). An unsolvable, ambiguous, or
// budget-exhausted puzzle is reported via Difficulty, not via error.
func Solve(grid []int, o int, opts Options) (Difficulty, []int, error) {
	st, err := NewState(o, grid)
	if err != nil {
		if err == ErrInvalidOrder || err == ErrInvalidGrid {
			return Impossible, nil, err
		}
		return Impossible, nil, nil
	}
	return solveState(st, opts, 0)
}

func solveState(st *State, opts Options, depth int) (Difficulty, []int, error) {
	maxDiff := opts.maxDiff()
	reached := Simple

	for {
		if ch, err := st.applySimple(); err != nil {
			return Impossible, nil, nil
		} else if ch {
			continue
		}
		if ch, present, err := runUserDeduction(st, opts, Simple); present {
			if err != nil {
				return Impossible, nil, nil
			}
			if ch {
				reached = maxDifficulty(reached, Simple)
				continue
			}
		}
		if st.Solved() {
			return finish(st, reached, opts)
		}

		if maxDiff < SetElim {
			return Unfinished, nil, nil
		}
		if ch, err := st.applySetElim(); err != nil {
			return Impossible, nil, nil
		} else if ch {
			reached = maxDifficulty(reached, SetElim)
			continue
		}
		if ch, present, err := runUserDeduction(st, opts, SetElim); present {
			if err != nil {
				return Impossible, nil, nil
			}
			if ch {
				reached = maxDifficulty(reached, SetElim)
				continue
			}
		}

		if maxDiff < Extreme {
			return Unfinished, nil, nil
		}
		if ch, err := st.applyExtreme(); err != nil {
			return Impossible, nil, nil
		} else if ch {
			reached = maxDifficulty(reached, Extreme)
			continue
		}
		if ch, present, err := runUserDeduction(st, opts, Extreme); present {
			if err != nil {
				return Impossible, nil, nil
			}
			if ch {
				reached = maxDifficulty(reached, Extreme)
				continue
			}
		}

		if maxDiff < Forcing {
			return Unfinished, nil, nil
		}
		if ch, err := st.applyForcing(); err != nil {
			return Impossible, nil, nil
		} else if ch {
			reached = maxDifficulty(reached, Forcing)
			continue
		}
		if ch, present, err := runUserDeduction(st, opts, Forcing); present {
			if err != nil {
				return Impossible, nil, nil
			}
			if ch {
				reached = maxDifficulty(reached, Forcing)
				continue
			}
		}

		if maxDiff < Recursion {
			return Unfinished, nil, nil
		}
		return recurse(st, opts, depth)
	}
}

// runUserDeduction consults opts.Deductions[level], the caller-supplied
// hook for that difficulty tier, if one was provided. present is false
// when no hook exists at that index, letting the driver loop skip it
// without treating "no hook" as "no progress".
func runUserDeduction(st *State, opts Options, level Difficulty) (changed, present bool, err error) {
	if int(level) >= len(opts.Deductions) || opts.Deductions[level] == nil {
		return false, false, nil
	}
	changed, err = opts.Deductions[level](st)
	return changed, true, err
}

func maxDifficulty(a, b Difficulty) Difficulty {
	if b > a {
		return b
	}
	return a
}

func finish(st *State, reached Difficulty, opts Options) (Difficulty, []int, error) {
	if opts.Validator != nil && !opts.Validator(st.Grid, st.O) {
		return Impossible, nil, nil
	}
	return reached, append([]int(nil), st.Grid...), nil
}

// recurse performs MRV-ordered backtracking search from st, returning
// Recursion with the unique solution, Ambiguous if a second distinct
// solution is found, Impossible if none exists, or Unfinished if
// opts.MaxDepth is exceeded before a verdict is reached.
func recurse(st *State, opts Options, depth int) (Difficulty, []int, error) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return Unfinished, nil, nil
	}

	idx := pickMRVCell(st)
	if idx == -1 {
		// st is already fully resolved (can happen if recurse is entered
		// from a branch where a sibling assignment finished the grid).
		return finish(st, Recursion, opts)
	}

	var solution []int
	solutions := 0
	for _, n := range bitsOf(st.Cand[idx]) {
		branch := st.Clone()
		if err := branch.assign(idx, n); err != nil {
			continue
		}
		diff, sol, _ := solveState(branch, opts, depth+1)
		switch diff {
		case Recursion, Simple, SetElim, Extreme, Forcing:
			if sol != nil {
				solutions++
				if solution == nil {
					solution = sol
				} else if !equalGrid(solution, sol) {
					return Ambiguous, nil, nil
				}
				if solutions >= 2 {
					return Ambiguous, nil, nil
				}
			}
		case Ambiguous:
			return Ambiguous, nil, nil
		case Unfinished:
			return Unfinished, nil, nil
		}
	}
	if solutions == 0 {
		return Impossible, nil, nil
	}
	return Recursion, solution, nil
}

func equalGrid(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// pickMRVCell returns the unresolved cell with the fewest remaining
// candidates (minimum remaining values heuristic), or -1 if every cell is
// resolved.
func pickMRVCell(st *State) int {
	best := -1
	bestCount := st.O + 1
	for idx, g := range st.Grid {
		if g != 0 {
			continue
		}
		c := popcount(st.Cand[idx])
		if c < bestCount {
			bestCount = c
			best = idx
		}
	}
	return best
}
