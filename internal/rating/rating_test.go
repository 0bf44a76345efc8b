package rating

import (
	"strconv"
	"testing"
)

func TestRateSeed200(t *testing.T) {
	r := Rate(200)
	if r.Value != "4.80" || r.Count != 160 {
		t.Fatalf("Rate(200) = %+v, want {4.80 160}", r)
	}
}

func TestRateBounds(t *testing.T) {
	for seed := -50; seed < 5000; seed++ {
		r := Rate(seed)
		v, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			t.Fatalf("seed %d: bad value %q", seed, r.Value)
		}
		if v < 4.80 || v > 4.99 {
			t.Fatalf("seed %d: value %v out of range", seed, v)
		}
		if r.Count < 120 || r.Count > 199 {
			t.Fatalf("seed %d: count %d out of range", seed, r.Count)
		}
	}
	if Rate(19).Value != "4.99" {
		t.Fatalf("Rate(19).Value = %q, want 4.99", Rate(19).Value)
	}
}
