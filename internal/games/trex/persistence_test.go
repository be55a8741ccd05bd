package trex

import "testing"

func TestMemoryStoreKeepsMaximum(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		writes  []int
		want    int
	}{
		{"higher replaces", 100, []int{250}, 250},
		{"lower ignored", 300, []int{120}, 300},
		{"equal kept", 80, []int{80}, 80},
		{"sequence keeps peak", 0, []int{50, 400, 10, 399}, 400},
		{"negative initial", -5, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(tt.initial)
			for _, w := range tt.writes {
				store.WriteHighScore(w)
			}
			if got := store.ReadHighScore(); got != tt.want {
				t.Errorf("ReadHighScore() = %d, want %d", got, tt.want)
			}
			if store.Writes() != len(tt.writes) {
				t.Errorf("Writes() = %d, want %d", store.Writes(), len(tt.writes))
			}
		})
	}
}
