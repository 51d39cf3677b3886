package gsm7

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeek(t *testing.T) {
	tests := []struct {
		name    string
		src     []uint16
		result  Result
		tables  ShiftTables
		missed  int
		escapes int
		score   int
	}{
		{
			name:   "default alphabet",
			src:    CodePoints("23@$"),
			result: Optimal,
		},
		{
			name:   "empty",
			result: Optimal,
		},
		{
			name:    "escape is cheaper than a national table",
			src:     CodePoints("23€"),
			result:  Lossless,
			escapes: 1,
			score:   1,
		},
		{
			name:   "turkish locking",
			src:    CodePoints("Ğ"),
			result: Lossless,
			tables: ShiftTables{Locking: Turkish},
			score:  300,
		},
		{
			name:   "hindi locking",
			src:    CodePoints("नमस्ते"),
			result: Lossless,
			tables: ShiftTables{Locking: Hindi},
			score:  300,
		},
		{
			name:   "mixed scripts",
			src:    []uint16{0x0416, 'N', 0x03A9, 0x0C03, '$', '@'},
			result: Lossy,
		},
		{
			name:   "cyrillic",
			src:    []uint16{0x0416},
			result: Lossy,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			rank, result := Seek(tt.src)
			assert.Equal(tt.result, result)
			if result == Lossy {
				// which best-effort pair wins is not part of the contract,
				// only that it is the same every time
				assert.Greater(rank.Missed, 0)
				again, _ := Seek(tt.src)
				assert.Equal(rank, again)
				return
			}
			assert.Equal(tt.tables, rank.Tables)
			assert.Equal(tt.missed, rank.Missed)
			assert.Equal(tt.escapes, rank.Escapes)
			assert.Equal(tt.score, rank.Score())
		})
	}
}

// No pair scores better than the one Seek picks.
func TestSeekIsMinimal(t *testing.T) {
	inputs := []string{
		"Hello [world]",
		"Çok güzel, teşekkürler!",
		"¿Qué tal? ñÑ",
		"Olá, não há problema ÇÂ",
		"আমি ভালো আছি",
		"ಕನ್ನಡ ಭಾಷೆ {}",
		"வணக்கம் €",
		"Здравствуй",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert := assert.New(t)
			src := CodePoints(in)
			best, result := Seek(src)

			for _, locking := range Tables() {
				for _, single := range Tables() {
					rank := RankTables(src, ShiftTables{Single: single, Locking: locking})
					assert.LessOrEqual(best.Score(), rank.Score(), rank.Tables.String())
				}
			}

			if best.Missed > 0 {
				assert.Equal(Lossy, result)
			} else {
				assert.NotEqual(Lossy, result)
			}

			// the chosen pair encodes everything it claims to
			st := best.Tables
			missed := 0
			for _, cp := range src {
				if !st.Encodable(cp) {
					missed++
				}
			}
			assert.Equal(best.Missed, missed)
		})
	}
}

// Characters no table can hold never make any pair look better.
func TestSeekMonotonic(t *testing.T) {
	base := CodePoints("Hello Ğ")
	for _, locking := range Tables() {
		for _, single := range Tables() {
			st := ShiftTables{Single: single, Locking: locking}
			t.Run(st.String(), func(t *testing.T) {
				assert := assert.New(t)
				prev := RankTables(base, st)
				src := base
				for _, cp := range []uint16{0x0416, 0x4E2D, 0x0416} {
					src = append(src[:len(src):len(src)], cp)
					next := RankTables(src, st)
					assert.Greater(next.Missed, prev.Missed)
					assert.GreaterOrEqual(next.Score(), prev.Score())
					prev = next
				}
			})
		}
	}

	// the same holds for the winner
	best, _ := Seek(base)
	worse, result := Seek(append(base[:len(base):len(base)], 0x4E2D))
	assert.Equal(t, Lossy, result)
	assert.Greater(t, worse.Score(), best.Score())
}

func TestRankScore(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Rank{}.Score())
	assert.Equal(0, Rank{}.HeaderOctets())
	assert.Equal(3, Rank{Tables: ShiftTables{Single: Spanish}}.HeaderOctets())
	assert.Equal(6, Rank{Tables: ShiftTables{Single: Spanish, Locking: Turkish}}.HeaderOctets())
	assert.Equal(1000+600+2, Rank{
		Tables:  ShiftTables{Single: Spanish, Locking: Turkish},
		Missed:  1,
		Escapes: 2,
	}.Score())

	// one miss outweighs both headers and plenty of escapes
	assert.Greater(Rank{Missed: 1}.Score(), Rank{
		Tables:  ShiftTables{Single: Urdu, Locking: Urdu},
		Escapes: 99,
	}.Score())

	assert.Equal("optimal", Optimal.String())
	assert.Equal("lossless", Lossless.String())
	assert.Equal("lossy", Lossy.String())
	assert.Equal(0, int(Optimal))
}
