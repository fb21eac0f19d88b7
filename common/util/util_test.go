package util

import "testing"

func TestConvert(t *testing.T) {
	t.Run("int to string length", func(t *testing.T) {
		got := Convert([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
		want := []int{1, 2, 3}
		if len(got) != len(want) {
			t.Fatalf("want %d items got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("index %d: want %d got %d", i, want[i], got[i])
			}
		}
	})
	t.Run("empty", func(t *testing.T) {
		got := Convert([]int{}, func(i int) int { return i })
		if len(got) != 0 {
			t.Errorf("want empty got %v", got)
		}
	})
}

func TestDedupe(t *testing.T) {
	t.Run("keeps first occurrence order", func(t *testing.T) {
		got := Dedupe([]string{"Rice", "Wheat", "Rice", "Maize", "Wheat"})
		want := []string{"Rice", "Wheat", "Maize"}
		if len(got) != len(want) {
			t.Fatalf("want %v got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("index %d: want %s got %s", i, want[i], got[i])
			}
		}
	})
	t.Run("no duplicates", func(t *testing.T) {
		got := Dedupe([]int{1, 2, 3})
		if len(got) != 3 {
			t.Errorf("want 3 got %d", len(got))
		}
	})
}
