package match

import "testing"

func TestAppendAndAll(t *testing.T) {
	var r Record
	r.Append(0, 4)
	r.Append(5, 7)

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0] != (Interval{0, 4}) || all[1] != (Interval{5, 7}) {
		t.Errorf("unexpected intervals: %+v", all)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestAppendRejectsNonPositiveSpan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for start >= end")
		}
	}()
	var r Record
	r.Append(3, 3)
}

func TestClearResetsLength(t *testing.T) {
	var r Record
	r.Append(0, 1)
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", r.Len())
	}
	// Reusable afterwards.
	r.Append(2, 3)
	if r.Len() != 1 {
		t.Errorf("Len() after reuse = %d, want 1", r.Len())
	}
}
