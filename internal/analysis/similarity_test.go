package analysis

import "testing"

func TestColorSimilarity(t *testing.T) {
	tests := []struct {
		name    string
		colors1 []string
		colors2 []string
		want    int
	}{
		{
			name:    "identical single color",
			colors1: []string{"black"},
			colors2: []string{"black"},
			want:    100,
		},
		{
			name:    "empty input",
			colors1: nil,
			colors2: []string{"black"},
			want:    0,
		},
		{
			name:    "no overlap",
			colors1: []string{"black"},
			colors2: []string{"pink"},
			want:    0,
		},
		{
			name:    "substring match",
			colors1: []string{"navy blue"},
			colors2: []string{"blue"},
			want:    70,
		},
		{
			name:    "family match",
			colors1: []string{"charcoal"},
			colors2: []string{"jet"},
			want:    50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorSimilarity(tt.colors1, tt.colors2); got != tt.want {
				t.Errorf("ColorSimilarity(%v, %v) = %d, want %d", tt.colors1, tt.colors2, got, tt.want)
			}
		})
	}
}

func TestColorSimilarityCappedAt100(t *testing.T) {
	colors := []string{"black", "white", "red"}
	if got := ColorSimilarity(colors, colors); got != 100 {
		t.Errorf("ColorSimilarity(identical sets) = %d, want 100", got)
	}
}

func TestPatternSimilarity(t *testing.T) {
	tests := []struct {
		name             string
		p1, d1, p2, d2   string
		want             int
		wantAtLeast      int
		useAtLeastCheck  bool
	}{
		{
			name: "exact pattern type",
			p1:   "floral", p2: "floral",
			want: 100,
		},
		{
			name: "same family",
			p1: "striped", d1: "vertical black stripes",
			p2: "stripes", d2: "vertical white stripes",
			wantAtLeast: 80, useAtLeastCheck: true,
		},
		{
			name: "pattern named in details",
			p1: "floral", d1: "small flowers",
			p2: "printed", d2: "floral print on white",
			want: 50,
		},
		{
			name: "no similarity",
			p1: "solid", d1: "plain black",
			p2: "striped", d2: "blue stripes",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PatternSimilarity(tt.p1, tt.d1, tt.p2, tt.d2)
			if tt.useAtLeastCheck {
				if got < tt.wantAtLeast || got > 100 {
					t.Errorf("PatternSimilarity = %d, want in [%d, 100]", got, tt.wantAtLeast)
				}
				return
			}
			if got != tt.want {
				t.Errorf("PatternSimilarity = %d, want %d", got, tt.want)
			}
		})
	}
}
