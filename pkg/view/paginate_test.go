package view

import "testing"

func TestMaxPage(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 0},
		{15, 0},
		{16, 1},
		{30, 1},
		{31, 2},
	}
	for _, c := range cases {
		if got := MaxPage(c.count); got != c.want {
			t.Errorf("MaxPage(%d) = %d, expected %d", c.count, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		page    int
		maxPage int
		want    int
	}{
		{5, 1, 1},
		{-3, 1, 0},
		{0, 0, 0},
		{1, 2, 1},
		{1000000, 3, 3},
	}
	for _, c := range cases {
		if got := Clamp(c.page, c.maxPage); got != c.want {
			t.Errorf("Clamp(%d, %d) = %d, expected %d", c.page, c.maxPage, got, c.want)
		}
	}
}
