package poker

import (
	"testing"
)

func TestCategorizeHole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hole     string
		expected HoleCardCategory
	}{
		{"Pocket Aces", "As Ah", CategoryPremium},
		{"Pocket Jacks", "Jh Jd", CategoryPremium},
		{"Ace King offsuit", "Ac Kh", CategoryPremium},

		{"Pocket Tens", "Tc Th", CategoryStrong},
		{"Ace Queen suited", "As Qs", CategoryStrong},
		{"Ace Jack offsuit", "Ad Jc", CategoryStrong},

		{"Pocket Sevens", "7h 7c", CategoryMedium},
		{"King Queen suited", "Ks Qs", CategoryMedium},
		{"Ace Ten suited", "Ah Th", CategoryMedium},

		{"Pocket Twos", "2c 2h", CategoryWeak},
		{"Suited connectors 76s", "7h 6h", CategoryWeak},
		{"Suited one-gapper 53s", "5d 3d", CategoryWeak},

		{"Seven Two offsuit", "7c 2h", CategoryTrash},
		{"King Queen offsuit", "Kc Qh", CategoryTrash},

		// record notation
		{"Pocket Aces one-based", "s13 h13", CategoryPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CategorizeHole(MustParseHand(tt.hole)); got != tt.expected {
				t.Errorf("CategorizeHole(%s) = %s, want %s", tt.hole, got, tt.expected)
			}
		})
	}
}

func TestCategorizeHoleWrongSize(t *testing.T) {
	t.Parallel()
	if got := CategorizeHole(MustParseHand("As")); got != CategoryUnknown {
		t.Errorf("one card: got %s, want %s", got, CategoryUnknown)
	}
	if got := CategorizeHole(MustParseHand("As Ks Qs")); got != CategoryUnknown {
		t.Errorf("three cards: got %s, want %s", got, CategoryUnknown)
	}
}
