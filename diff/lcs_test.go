package diff

import (
	"reflect"
	"testing"
)

func lineTypes(result *Result) []LineType {
	types := make([]LineType, len(result.Lines))
	for i, line := range result.Lines {
		types[i] = line.Type
	}
	return types
}

func TestCompareIdenticalContent(t *testing.T) {
	engine := NewEngineDefault()
	lines := []string{"line1", "line2", "line3"}

	result := engine.Compare(lines, lines)

	if len(result.Lines) != 3 {
		t.Fatalf("Compare returned %d lines, want 3", len(result.Lines))
	}
	for i, line := range result.Lines {
		if line.Type != LineSame {
			t.Errorf("line %d type = %v, want same", i, line.Type)
		}
	}
	if chunks := ChunksOf(result); len(chunks) != 0 {
		t.Errorf("identical content produced %d chunks, want 0", len(chunks))
	}
}

func TestCompareInsertionInMiddle(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "b", "c"}

	result := engine.Compare(left, right)

	want := []LineType{LineSame, LineAdded, LineSame, LineSame}
	if got := lineTypes(result); !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}

	chunks := ChunksOf(result)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Type != LineAdded || chunks[0].Start != 1 || chunks[0].End != 1 {
		t.Errorf("chunk = %+v, want added [1,1]", chunks[0])
	}
}

func TestCompareAppendAtEnd(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"a", "b"}
	right := []string{"a", "b", "c"}

	result := engine.Compare(left, right)

	want := []LineType{LineSame, LineSame, LineAdded}
	if got := lineTypes(result); !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}

	chunks := ChunksOf(result)
	if len(chunks) != 1 || chunks[0].Start != 2 || chunks[0].End != 2 {
		t.Fatalf("chunks = %+v, want one chunk at index 2", chunks)
	}
}

func TestCompareRemoval(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"line1", "line2", "line3"}
	right := []string{"line1", "line3"}

	result := engine.Compare(left, right)

	want := []LineType{LineSame, LineRemoved, LineSame}
	if got := lineTypes(result); !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
}

func TestCompareSimilarLineBecomesModified(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"const v = 42"}
	right := []string{"const v = 43"}

	result := engine.Compare(left, right)

	if len(result.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(result.Lines))
	}
	line := result.Lines[0]
	if line.Type != LineModified {
		t.Fatalf("type = %v, want modified", line.Type)
	}
	if line.LeftText != "const v = 42" || line.RightText != "const v = 43" {
		t.Errorf("unexpected content: %+v", line)
	}
	if line.LeftNumber != 1 || line.RightNumber != 1 {
		t.Errorf("numbers = %d/%d, want 1/1", line.LeftNumber, line.RightNumber)
	}
}

func TestCompareShortLinesStaySeparate(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"hi"}
	right := []string{"bye"}

	result := engine.Compare(left, right)

	// Both lines are under MinLineLength and not equal, so the scorer
	// rejects the pair and the rows stay removed+added.
	want := []LineType{LineRemoved, LineAdded}
	if got := lineTypes(result); !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}

	chunks := ChunksOf(result)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Type != LineRemoved || chunks[1].Type != LineAdded {
		t.Errorf("chunk types = %v/%v, want removed/added", chunks[0].Type, chunks[1].Type)
	}
}

func TestCompareEmptySides(t *testing.T) {
	engine := NewEngineDefault()

	t.Run("both empty", func(t *testing.T) {
		result := engine.Compare(nil, nil)
		if len(result.Lines) != 0 {
			t.Errorf("got %d lines, want 0", len(result.Lines))
		}
	})

	t.Run("left empty", func(t *testing.T) {
		result := engine.Compare(nil, []string{"a", "b"})
		want := []LineType{LineAdded, LineAdded}
		if got := lineTypes(result); !reflect.DeepEqual(got, want) {
			t.Errorf("types = %v, want %v", got, want)
		}
	})

	t.Run("right empty", func(t *testing.T) {
		result := engine.Compare([]string{"a", "b"}, nil)
		want := []LineType{LineRemoved, LineRemoved}
		if got := lineTypes(result); !reflect.DeepEqual(got, want) {
			t.Errorf("types = %v, want %v", got, want)
		}
	})
}

func TestCompareReconstruction(t *testing.T) {
	engine := NewEngineDefault()

	cases := []struct {
		name  string
		left  []string
		right []string
	}{
		{"disjoint", []string{"a", "b", "c"}, []string{"x", "y"}},
		{"interleaved", []string{"a", "b", "c", "d"}, []string{"b", "x", "d", "e"}},
		{"repeated lines", []string{"a", "a", "b", "a"}, []string{"a", "b", "a", "a"}},
		{"modified block", []string{"func foo() int {", "return 1"}, []string{"func foo() int64 {", "return 2"}},
		{"empty strings", []string{"", "a", ""}, []string{"a", "", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Compare(tc.left, tc.right)
			if got := result.LeftLines(); !equalLines(got, tc.left) {
				t.Errorf("left reconstruction = %q, want %q", got, tc.left)
			}
			if got := result.RightLines(); !equalLines(got, tc.right) {
				t.Errorf("right reconstruction = %q, want %q", got, tc.right)
			}
		})
	}
}

func equalLines(a, b []string) bool {
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

func TestCompareDeterministic(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"a", "b", "c", "d", "e"}
	right := []string{"b", "x", "d", "y", "e", "z"}

	first := engine.Compare(left, right)
	for run := 0; run < 5; run++ {
		again := engine.Compare(left, right)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different result", run)
		}
	}
}

func TestAlignTieBreakPrefersAdded(t *testing.T) {
	// With no common lines the LCS table is all zeros, so every backtrack
	// step ties. Added lines are consumed first while walking backwards,
	// which puts the removed block before the added block in forward order.
	lines := align([]string{"left1", "left2"}, []string{"right1", "right2"})

	want := []LineType{LineRemoved, LineRemoved, LineAdded, LineAdded}
	got := make([]LineType, len(lines))
	for i, line := range lines {
		got[i] = line.Type
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("types = %v, want %v", got, want)
	}
}

func TestCompareLineNumbers(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"a", "b", "c"}
	right := []string{"a", "x", "b", "c"}

	result := engine.Compare(left, right)

	wantLeft := []int{1, 0, 2, 3}
	wantRight := []int{1, 2, 3, 4}
	for i, line := range result.Lines {
		if line.LeftNumber != wantLeft[i] {
			t.Errorf("line %d left number = %d, want %d", i, line.LeftNumber, wantLeft[i])
		}
		if line.RightNumber != wantRight[i] {
			t.Errorf("line %d right number = %d, want %d", i, line.RightNumber, wantRight[i])
		}
	}
}

func TestCompareNumbersMonotonic(t *testing.T) {
	engine := NewEngineDefault()
	left := []string{"one", "two", "three", "four", "five"}
	right := []string{"one", "2", "three", "4", "5", "six"}

	result := engine.Compare(left, right)

	lastLeft, lastRight := 0, 0
	for i, line := range result.Lines {
		if line.LeftNumber != 0 {
			if line.LeftNumber <= lastLeft {
				t.Errorf("line %d: left number %d not increasing past %d", i, line.LeftNumber, lastLeft)
			}
			lastLeft = line.LeftNumber
		}
		if line.RightNumber != 0 {
			if line.RightNumber <= lastRight {
				t.Errorf("line %d: right number %d not increasing past %d", i, line.RightNumber, lastRight)
			}
			lastRight = line.RightNumber
		}
	}
}
