package gsm7

// Result classifies the outcome of Seek. Only Optimal is zero.
type Result int

const (
	// Optimal: the default alphabet encodes everything without escapes.
	Optimal Result = iota
	// Lossless: every character is encodable, but only with escapes or
	// national language tables.
	Lossless
	// Lossy: no pair encodes every character; prefer UCS-2.
	Lossy
)

func (r Result) String() string {
	switch r {
	case Optimal:
		return "optimal"
	case Lossless:
		return "lossless"
	case Lossy:
		return "lossy"
	}
	return "unknown"
}

// headerOctets is the size of one National Language information element in
// the user data header.
const headerOctets = 3

// Rank is the tally of one shift table pair against an input.
type Rank struct {
	Tables  ShiftTables
	Missed  int
	Escapes int
}

// HeaderOctets is the user data header cost of announcing the pair.
func (r Rank) HeaderOctets() int {
	n := 0
	if r.Tables.Single != Default {
		n += headerOctets
	}
	if r.Tables.Locking != Default {
		n += headerOctets
	}
	return n
}

// Score orders ranks, lower is better: a missed character outweighs any
// header cost, which outweighs any number of escapes.
func (r Rank) Score() int {
	return 1000*r.Missed + 100*r.HeaderOctets() + r.Escapes
}

// RankTables counts how src fares under st.
func RankTables(src []uint16, st ShiftTables) Rank {
	rank := Rank{Tables: st}
	locking, single := LockingTable(st.Locking), SingleShiftTable(st.Single)
	for _, cp := range src {
		if _, ok := locking.Septet(cp); ok {
			continue
		}
		if _, ok := single.Septet(cp); ok {
			rank.Escapes++
		} else {
			rank.Missed++
		}
	}
	return rank
}

// Seek tries every locking and single shift combination and returns the one
// that represents src most cheaply. Pairs are visited by ascending locking
// table, then ascending single shift table; on equal scores the first pair
// visited is kept, so the answer is stable for a given input. For a Lossy
// result the pair is only a best effort.
func Seek(src []uint16) (Rank, Result) {
	var best Rank
	bestScore := -1
	for locking := Default; locking < numTables; locking++ {
		for single := Default; single < numTables; single++ {
			rank := RankTables(src, ShiftTables{Single: single, Locking: locking})
			score := rank.Score()
			if score == 0 {
				// only Default/Default can score zero, nothing beats it
				return rank, Optimal
			}
			if bestScore < 0 || score < bestScore {
				best, bestScore = rank, score
			}
		}
	}
	if best.Missed > 0 {
		return best, Lossy
	}
	return best, Lossless
}
