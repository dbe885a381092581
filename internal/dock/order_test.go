package dock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(values ...string) []ItemID {
	out := make([]ItemID, len(values))
	for i, v := range values {
		out[i] = ItemID(v)
	}
	return out
}

func TestNewOrder_DropsDuplicates(t *testing.T) {
	o := NewOrder(ids("a", "b", "a", "c", "b"))
	if diff := cmp.Diff(ids("a", "b", "c"), o.IDs()); diff != "" {
		t.Fatalf("NewOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_IDsReturnsCopy(t *testing.T) {
	o := NewOrder(ids("a", "b"))
	got := o.IDs()
	got[0] = "z"
	if o.Index("a") != 0 {
		t.Fatalf("IDs should return a copy; order now %v", o.IDs())
	}
}

func TestOrder_Insert(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		id   string
		want []ItemID
	}{
		{"head", 0, "x", ids("x", "a", "b", "c")},
		{"middle", 1, "x", ids("a", "x", "b", "c")},
		{"tail", 3, "x", ids("a", "b", "c", "x")},
		{"past tail clamps", 10, "x", ids("a", "b", "c", "x")},
		{"negative clamps", -4, "x", ids("x", "a", "b", "c")},
		{"existing moves right", 2, "a", ids("b", "c", "a")},
		{"existing moves left", 0, "c", ids("c", "a", "b")},
		{"existing same place", 1, "b", ids("a", "b", "c")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder(ids("a", "b", "c"))
			o.Insert(tt.idx, ItemID(tt.id))
			if diff := cmp.Diff(tt.want, o.IDs()); diff != "" {
				t.Fatalf("Insert(%d, %q) mismatch (-want +got):\n%s", tt.idx, tt.id, diff)
			}
		})
	}
}

func TestOrder_SwapAndRemove(t *testing.T) {
	o := NewOrder(ids("a", "b", "c"))
	if !o.Swap(0, 2) {
		t.Fatalf("Swap(0, 2) = false, want true")
	}
	if diff := cmp.Diff(ids("c", "b", "a"), o.IDs()); diff != "" {
		t.Fatalf("Swap mismatch (-want +got):\n%s", diff)
	}
	if o.Swap(1, 1) || o.Swap(-1, 0) || o.Swap(0, 3) {
		t.Fatalf("Swap with invalid indices should report false")
	}

	if !o.Remove("b") {
		t.Fatalf("Remove(b) = false, want true")
	}
	if o.Remove("b") {
		t.Fatalf("second Remove(b) = true, want false")
	}
	if o.Len() != 2 || o.Contains("b") {
		t.Fatalf("order after remove = %v", o.IDs())
	}
	if _, ok := o.At(5); ok {
		t.Fatalf("At(5) ok = true, want false")
	}
}
