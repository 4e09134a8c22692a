package solve

import "math/big"

// aggregate combines per-component enumeration results into one global
// mine-probability map. A component's permutations cannot be weighted
// uniformly: each one consumes some of the fixed remaining-mine budget
// and so constrains every other component and the exterior. The joint
// distribution over total frontier mines is the convolution of the
// per-component mine-count histograms; a total of t frontier mines
// leaves M-t mines for the E exterior cells, which is possible in
// C(E, M-t) ways. All weight arithmetic stays in big integers; only
// the final per-cell division produces a float.
func aggregate(
	comps []*component, tallies []*tally,
	exterior []int, minesLeft int,
) (map[int]float64, error) {
	var (
		r     = len(comps)
		e     = int64(len(exterior))
		m     = int64(minesLeft)
		hists = make([][]*big.Int, r)
	)
	for i, t := range tallies {
		hists[i] = make([]*big.Int, len(t.byCount))
		for c, n := range t.byCount {
			hists[i][c] = big.NewInt(n)
		}
	}

	// prefix[i] = H_0 * ... * H_{i-1}, suffix[i] = H_{i+1} * ... .
	// Their product skips exactly one histogram, which gives every
	// component its "all the others" distribution in O(r) convolutions.
	unit := []*big.Int{big.NewInt(1)}
	prefix := make([][]*big.Int, r+1)
	suffix := make([][]*big.Int, r+1)
	prefix[0] = unit
	suffix[r] = unit
	for i := range r {
		prefix[i+1] = convolve(prefix[i], hists[i])
		suffix[r-1-i] = convolve(hists[r-1-i], suffix[r-i])
	}
	full := prefix[r]

	tmp := new(big.Int)
	totalWeight := new(big.Int)
	for t, n := range full {
		totalWeight.Add(totalWeight, tmp.Mul(n, binom(e, m-int64(t))))
	}
	if totalWeight.Sign() == 0 {
		// Every joint configuration is incompatible with the
		// remaining mine count.
		return nil, ContradictionError{Cell: -1}
	}

	probs := make(map[int]float64, len(exterior))

	for i, comp := range comps {
		others := convolve(prefix[i], suffix[i+1])

		// weight[c] = number of ways the rest of the board absorbs
		// the budget when this component uses exactly c mines.
		weight := make([]*big.Int, len(hists[i]))
		for c := range weight {
			w := new(big.Int)
			for u, n := range others {
				w.Add(w, tmp.Mul(n, binom(e, m-int64(c)-int64(u))))
			}
			weight[c] = w
		}

		num := new(big.Int)
		for j, cell := range comp.cells {
			num.SetInt64(0)
			for c := range weight {
				if tallies[i].perCell[c][j] == 0 {
					continue
				}
				tmp.Mul(weight[c], big.NewInt(tallies[i].perCell[c][j]))
				num.Add(num, tmp)
			}
			probs[cell] = ratio(num, totalWeight)
		}
	}

	if e > 0 {
		// Exterior cells are interchangeable: t frontier mines leave
		// M-t mines spread uniformly over E cells.
		num := new(big.Int)
		for t, n := range full {
			left := m - int64(t)
			if left <= 0 || left > e {
				continue
			}
			tmp.Mul(n, binom(e, left))
			num.Add(num, tmp.Mul(tmp, big.NewInt(left)))
		}
		den := new(big.Int).Mul(totalWeight, big.NewInt(e))
		p := ratio(num, den)
		for _, cell := range exterior {
			probs[cell] = p
		}
	}

	return probs, nil
}

func convolve(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	var tmp big.Int
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], tmp.Mul(ai, bj))
		}
	}
	return out
}

var zero = new(big.Int)

func binom(n, k int64) *big.Int {
	if k < 0 || k > n {
		return zero
	}
	return new(big.Int).Binomial(n, k)
}

func ratio(num, den *big.Int) float64 {
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}
