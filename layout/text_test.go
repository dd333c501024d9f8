package layout

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTextHeight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  int
	}{
		{"empty", "", 10, 0},
		{"whitespace only", "   \t\n ", 10, 0},
		{"single word", "hello", 10, 1},
		{"exact fit", "abcde", 5, 1},
		{"two words one line", "hi there", 8, 1},
		{"two words wrap", "hi there", 6, 2},
		{"boundary no wrap", "aaaa bbbbb", 10, 1},
		{"boundary wrap", "aaaaa bbbbb ccccc", 10, 3},
		{"oversized first word", "abcdefghijkl", 5, 2},
		{"collapsed whitespace", "a   b\n\nc", 5, 1},
		{"one per line", "aa bb cc", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TextHeight(tt.text, tt.width)
			if err != nil {
				t.Fatalf("TextHeight(%q, %d) unexpected error: %v", tt.text, tt.width, err)
			}
			if got != tt.want {
				t.Errorf("TextHeight(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTextHeight_ZeroWidth(t *testing.T) {
	for _, width := range []int{0, -3} {
		if _, err := TextHeight("some text", width); !errors.Is(err, ErrZeroWidth) {
			t.Errorf("Expected ErrZeroWidth for width %d, got %v", width, err)
		}
		if _, err := Wrap("some text", width); !errors.Is(err, ErrZeroWidth) {
			t.Errorf("Expected ErrZeroWidth from Wrap for width %d, got %v", width, err)
		}
	}
}

func TestTextHeight_EmptyAnyWidth(t *testing.T) {
	for width := 1; width < 50; width++ {
		got, err := TextHeight("", width)
		if err != nil || got != 0 {
			t.Errorf("TextHeight(\"\", %d) = %d, %v; want 0, nil", width, got, err)
		}
	}
}

func TestTextHeight_MonotonicAboveLongestWord(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff ggggggg",
		"lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod",
	}

	for _, text := range texts {
		longest := 0
		for _, w := range strings.Fields(text) {
			if len(w) > longest {
				longest = len(w)
			}
		}

		prev := -1
		for width := longest; width <= len(text)+2; width++ {
			h, err := TextHeight(text, width)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prev != -1 && h > prev {
				t.Errorf("%q: height grew from %d to %d at width %d", text, prev, h, width)
			}
			prev = h
		}
		if prev != 1 {
			t.Errorf("%q: expected a single line at full width, got %d", text, prev)
		}
	}
}

func TestWrap_Placements(t *testing.T) {
	got, err := Wrap("aaaaa bbbbb ccccc", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Placement{
		{Word: "aaaaa", DX: 0, DY: 0},
		{Word: "bbbbb", DX: 0, DY: 1},
		{Word: "ccccc", DX: 0, DY: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap placements = %+v, want %+v", got, want)
	}

	got, err = Wrap("hi there you", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []Placement{
		{Word: "hi", DX: 0, DY: 0},
		{Word: "there", DX: 3, DY: 0},
		{Word: "you", DX: 0, DY: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap placements = %+v, want %+v", got, want)
	}
}

func TestWrap_OversizedWordOverflows(t *testing.T) {
	got, err := Wrap("x abcdefgh y", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Placement{
		{Word: "x", DX: 0, DY: 0},
		{Word: "abcdefgh", DX: 0, DY: 1},
		{Word: "y", DX: 0, DY: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap placements = %+v, want %+v", got, want)
	}
}

func TestWrap_ConsistentWithTextHeight(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	for width := 1; width <= 30; width++ {
		placements, err := Wrap(text, width)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h, _ := TextHeight(text, width)
		lines := 0
		for _, p := range placements {
			if p.DY+1 > lines {
				lines = p.DY + 1
			}
		}
		if lines != h {
			t.Errorf("width %d: placements span %d lines, TextHeight says %d", width, lines, h)
		}
	}
}
