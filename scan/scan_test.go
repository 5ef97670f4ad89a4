package scan

import "testing"

func TestIndexByte(t *testing.T) {
	buf := []byte("hello world")
	if idx := IndexByte(buf, 'o', 0); idx != 4 {
		t.Errorf("IndexByte(from=0) = %d, want 4", idx)
	}
	if idx := IndexByte(buf, 'o', 5); idx != 7 {
		t.Errorf("IndexByte(from=5) = %d, want 7", idx)
	}
	if idx := IndexByte(buf, 'z', 0); idx != -1 {
		t.Errorf("IndexByte(missing) = %d, want -1", idx)
	}
	if idx := IndexByte(buf, 'h', len(buf)); idx != -1 {
		t.Errorf("IndexByte(from=len) = %d, want -1", idx)
	}
}

func TestIndexAny(t *testing.T) {
	buf := []byte("foo\tbar baz")
	if idx := IndexAny(buf, []byte{' ', '\t'}, 0); idx != 3 {
		t.Errorf("IndexAny(from=0) = %d, want 3", idx)
	}
	if idx := IndexAny(buf, []byte{' ', '\t'}, 4); idx != 7 {
		t.Errorf("IndexAny(from=4) = %d, want 7", idx)
	}
	if idx := IndexAny(buf, []byte{'@'}, 0); idx != -1 {
		t.Errorf("IndexAny(absent) = %d, want -1", idx)
	}
}

func TestCapableDoesNotPanic(t *testing.T) {
	_ = Capable()
}
