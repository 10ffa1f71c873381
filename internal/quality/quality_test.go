package quality

import "testing"

func TestAssess(t *testing.T) {
	cases := []struct {
		name  string
		fill  int
		total int
		want  Level
	}{
		{name: "empty_group", fill: 0, total: 5, want: Missing},
		{name: "one_of_five", fill: 1, total: 5, want: Poor},
		{name: "two_of_five", fill: 2, total: 5, want: Fair},
		{name: "three_of_five", fill: 3, total: 5, want: Fair},
		{name: "four_of_five", fill: 4, total: 5, want: Good},
		{name: "five_of_five", fill: 5, total: 5, want: Excellent},
		{name: "one_of_four", fill: 1, total: 4, want: Poor},
		{name: "two_of_four", fill: 2, total: 4, want: Fair},
		{name: "three_of_four", fill: 3, total: 4, want: Good},
		{name: "four_of_four", fill: 4, total: 4, want: Excellent},
		{name: "zero_slots", fill: 0, total: 0, want: Missing},
		{name: "twenty_of_twenty_five", fill: 20, total: 25, want: Good},
		{name: "twenty_one_of_twenty_five", fill: 21, total: 25, want: Excellent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Assess(tc.fill, tc.total)
			if got != tc.want {
				t.Fatalf("Assess(%d, %d)=%q, want %q", tc.fill, tc.total, got, tc.want)
			}
		})
	}
}
