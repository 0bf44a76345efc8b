package scheduler

import (
	"testing"
	"time"
)

func TestNewInvalidTimezone(t *testing.T) {
	if _, err := New("Nowhere/Special"); err == nil {
		t.Fatal("expected timezone error")
	}
}

func TestScheduleInvalidSpec(t *testing.T) {
	s, err := New("UTC")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Schedule("not a spec", func() {}); err == nil {
		t.Fatal("expected spec error")
	}
}

func TestNextRun(t *testing.T) {
	s, err := New("UTC")
	if err != nil {
		t.Fatal(err)
	}
	if !s.NextRun().IsZero() {
		t.Fatal("next run should be zero before scheduling")
	}
	if err := s.Schedule("0 3 * * *", func() {}); err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer s.Stop()

	var next time.Time
	for i := 0; i < 50 && next.IsZero(); i++ {
		next = s.NextRun()
		time.Sleep(10 * time.Millisecond)
	}
	if next.IsZero() {
		t.Fatal("next run not computed after start")
	}
	if next.Hour() != 3 || next.Minute() != 0 {
		t.Fatalf("unexpected next run %v", next)
	}
	if s.Location().String() != "UTC" {
		t.Fatalf("location = %v", s.Location())
	}
}
