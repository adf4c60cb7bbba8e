package latin

// applyForcing looks for a bivalue cell (exactly two remaining candidates)
// where tentatively assigning either candidate and propagating Simple
// deductions either (a) leads one branch to a contradiction, forcing the
// other candidate, or (b) leads both branches to agree on some other
// cell's value, forcing that value regardless of which candidate is
// chosen. It applies the first such forced conclusion it finds and
// returns.
func (st *State) applyForcing() (bool, error) {
	for idx := range st.Grid {
		if st.Grid[idx] != 0 || popcount(st.Cand[idx]) != 2 {
			continue
		}
		cands := bitsOf(st.Cand[idx])
		a, b := cands[0], cands[1]

		branchA := st.Clone()
		errA := branchA.assign(idx, a)
		if errA == nil {
			_, errA = branchA.applySimple()
		}
		branchB := st.Clone()
		errB := branchB.assign(idx, b)
		if errB == nil {
			_, errB = branchB.applySimple()
		}

		switch {
		case errA != nil && errB != nil:
			return false, errContradiction
		case errA != nil:
			return true, st.assign(idx, b)
		case errB != nil:
			return true, st.assign(idx, a)
		default:
			if changed, err := st.mergeAgreement(branchA, branchB); err != nil || changed {
				return changed, err
			}
		}
	}
	return false, nil
}

// mergeAgreement applies, to st, every cell both forcing-chain branches
// independently resolved to the same digit.
func (st *State) mergeAgreement(a, b *State) (bool, error) {
	changed := false
	for idx := range st.Grid {
		if st.Grid[idx] != 0 {
			continue
		}
		if a.Grid[idx] != 0 && a.Grid[idx] == b.Grid[idx] {
			if err := st.assign(idx, a.Grid[idx]); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}
