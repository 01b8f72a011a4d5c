package plural

import "testing"

func TestForm(t *testing.T) {
	cases := map[int]int{
		0:   2,
		1:   0,
		2:   1,
		3:   1,
		4:   1,
		5:   2,
		10:  2,
		11:  2,
		12:  2,
		14:  2,
		15:  2,
		21:  0,
		22:  1,
		25:  2,
		100: 2,
		101: 0,
		102: 1,
		111: 2,
		121: 0,
	}
	for count, want := range cases {
		if got := Form(count); got != want {
			t.Errorf("Form(%d) = %d, want %d", count, got, want)
		}
	}
}

func TestFormTotal(t *testing.T) {
	for n := 0; n < 1000; n++ {
		if f := Form(n); f < 0 || f > 2 {
			t.Fatalf("Form(%d) = %d, out of range", n, f)
		}
	}
}

func TestChoose(t *testing.T) {
	if got := Choose(1, "one", "few", "many"); got != "one" {
		t.Errorf("Choose(1) = %q", got)
	}
	if got := Choose(3, "one", "few", "many"); got != "few" {
		t.Errorf("Choose(3) = %q", got)
	}
	if got := Choose(11, "one", "few", "many"); got != "many" {
		t.Errorf("Choose(11) = %q", got)
	}
}
