package trace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogPreservesOrder(t *testing.T) {
	var l Log
	l.Add(LPSInit{Note: Notef("start %d", 1)})
	l.Add(LPSZero{I: 1})
	l.Add(LPSComplete{})

	var got []Kind
	for _, s := range l.Steps() {
		got = append(got, s.Kind())
	}
	want := []Kind{KindInit, KindZero, KindComplete}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if d := l.Steps()[0].Describe(); d != "start 1" {
		t.Fatalf("describe = %q", d)
	}
}

func TestStepsReturnsCopy(t *testing.T) {
	var l Log
	l.Add(LPSInit{})
	s := l.Steps()
	s[0] = LPSComplete{}
	if l.Steps()[0].Kind() != KindInit {
		t.Fatalf("Steps must not alias the log")
	}
}

func TestSnapshotDetaches(t *testing.T) {
	src := []int{0, 1, 2}
	snap := Snapshot(src)
	src[1] = 9
	if snap[1] != 1 {
		t.Fatalf("snapshot aliases source: %v", snap)
	}
	if Snapshot(nil) != nil {
		t.Fatalf("Snapshot(nil) should stay nil")
	}
}
