package docstore

import (
	"context"
	"testing"
	"time"
)

func TestFields_NumericAccessors(t *testing.T) {
	f := Fields{
		"i32":   int32(4),
		"i64":   int64(5),
		"float": 2.5,
		"whole": 3.0,
		"str":   "x",
	}

	if v, ok := f.Int("i32"); !ok || v != 4 {
		t.Errorf("Int(i32) = %d, %v", v, ok)
	}
	if v, ok := f.Int("whole"); !ok || v != 3 {
		t.Errorf("Int(whole) = %d, %v", v, ok)
	}
	if _, ok := f.Int("float"); ok {
		t.Errorf("Int(float) should reject a fractional value")
	}
	if v, ok := f.Float("i64"); !ok || v != 5 {
		t.Errorf("Float(i64) = %v, %v", v, ok)
	}
	if _, ok := f.Float("str"); ok {
		t.Errorf("Float(str) should fail")
	}
	if f.OptionalString("missing") != nil {
		t.Errorf("OptionalString(missing) should be nil")
	}
}

func TestSetOptional(t *testing.T) {
	f := Fields{}
	var absent *string
	present := "note"

	SetOptional(f, "a", absent)
	SetOptional(f, "b", &present)

	if _, ok := f["a"]; ok {
		t.Errorf("nil optional should not be stored")
	}
	if f["b"] != "note" {
		t.Errorf("expected b=note, got %v", f["b"])
	}
}

func TestStamp(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := Fields{"name": "Drone"}

	out := Stamp(in, now, "createdAt", "updatedAt")

	if _, ok := in["createdAt"]; ok {
		t.Errorf("Stamp must not modify its input")
	}
	if got, _ := out.Time("updatedAt"); !got.Equal(now) {
		t.Errorf("updatedAt = %v, want %v", got, now)
	}
}

type deadlineRecorder struct {
	Store
	deadline time.Time
	ok       bool
}

func (d *deadlineRecorder) Find(ctx context.Context, collection string, filters ...Filter) ([]*Document, error) {
	d.deadline, d.ok = ctx.Deadline()
	return nil, nil
}

func TestWithTimeout_AppliesDeadline(t *testing.T) {
	rec := &deadlineRecorder{}
	s := WithTimeout(rec, time.Minute)

	start := time.Now()
	if _, err := s.Find(context.Background(), "assets"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.ok {
		t.Fatalf("expected a deadline on the store call")
	}
	if rec.deadline.Sub(start) > time.Minute+time.Second {
		t.Errorf("deadline too far: %v", rec.deadline.Sub(start))
	}
}

func TestWithTimeout_KeepsSoonerCallerDeadline(t *testing.T) {
	rec := &deadlineRecorder{}
	s := WithTimeout(rec, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	want, _ := ctx.Deadline()

	if _, err := s.Find(ctx, "assets"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.deadline.Equal(want) {
		t.Errorf("deadline = %v, want caller's %v", rec.deadline, want)
	}
}

func TestWithTimeout_ZeroDisables(t *testing.T) {
	rec := &deadlineRecorder{}
	if WithTimeout(rec, 0) != Store(rec) {
		t.Errorf("zero timeout should return the store unchanged")
	}
}
