package layout

import "testing"

func TestItemChangesRemap(t *testing.T) {
	tests := []struct {
		name     string
		change   ItemChanges
		position int
		want     int
		wantOK   bool
	}{
		{"insert before", Inserted(2, 3), 5, 8, true},
		{"insert at", Inserted(5, 3), 5, 8, true},
		{"insert after", Inserted(6, 3), 5, 5, true},
		{"remove before", Removed(0, 2), 5, 3, true},
		{"remove covering", Removed(4, 2), 5, NoPosition, false},
		{"remove after", Removed(6, 2), 5, 5, true},
		{"move the item", Moved(5, 0, 1), 5, 0, true},
		{"move over the item forward", Moved(0, 5, 1), 5, 4, true},
		{"move over the item backward", Moved(8, 2, 1), 5, 6, true},
		{"move elsewhere", Moved(8, 9, 1), 5, 5, true},
		{"update", Updated(5, 1), 5, 5, true},
		{"no position", Inserted(0, 2), NoPosition, NoPosition, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.change.Remap(tt.position)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Remap(%d) = %d, %v, want %d, %v", tt.position, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestItemChangesClamp(t *testing.T) {
	tests := []struct {
		name        string
		change      ItemChanges
		itemCount   int
		want        ItemChanges
		wantClamped bool
	}{
		{"valid insert", Inserted(10, 2), 10, Inserted(10, 2), false},
		{"insert past end", Inserted(15, 2), 10, Inserted(10, 2), true},
		{"remove past end", Removed(8, 5), 10, Removed(8, 2), true},
		{"negative remove", Removed(-3, 2), 10, Removed(0, 2), true},
		{"negative count", Updated(1, -1), 10, Updated(1, 0), true},
		{"move overflow", Moved(9, 20, 3), 10, Moved(9, 9, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := tt.change.Clamp(tt.itemCount)
			if got != tt.want || clamped != tt.wantClamped {
				t.Errorf("Clamp(%d) = %v, %v, want %v, %v", tt.itemCount, got, clamped, tt.want, tt.wantClamped)
			}
		})
	}
}

func TestItemChangesWindowRelation(t *testing.T) {
	// Window covers positions 10..20.
	tests := []struct {
		name       string
		change     ItemChanges
		intersects bool
		before     bool
	}{
		{"insert before window", Inserted(3, 2), false, true},
		{"insert inside window", Inserted(12, 1), true, false},
		{"insert right after window", Inserted(21, 1), true, false},
		{"insert far after window", Inserted(30, 1), false, false},
		{"remove before window", Removed(0, 10), false, true},
		{"remove overlapping window", Removed(5, 6), true, false},
		{"update inside window", Updated(15, 1), true, false},
		{"move into window", Moved(40, 15, 1), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.change.Intersects(10, 20); got != tt.intersects {
				t.Errorf("Intersects() = %v, want %v", got, tt.intersects)
			}
			if got := tt.change.Before(10); got != tt.before {
				t.Errorf("Before() = %v, want %v", got, tt.before)
			}
		})
	}
}

func TestItemChangesDelta(t *testing.T) {
	if d := Inserted(0, 4).Delta(); d != 4 {
		t.Errorf("insert Delta() = %d", d)
	}
	if d := Removed(0, 4).Delta(); d != -4 {
		t.Errorf("remove Delta() = %d", d)
	}
	if d := Moved(0, 3, 4).Delta(); d != 0 {
		t.Errorf("move Delta() = %d", d)
	}
	if s := Moved(1, 3, 2).String(); s != "move(1->3, 2)" {
		t.Errorf("String() = %q", s)
	}
}
