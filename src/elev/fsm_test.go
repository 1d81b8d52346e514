package elev

import (
	"testing"

	"elevsim/src/types"
)

func TestNextStop(t *testing.T) {
	tests := []struct {
		name    string
		floor   int
		dir     types.Direction
		waiting [][2]int
		loaded  [][2]int
		want    int
		wantOk  bool
	}{
		{"waiting ahead going up", 2, types.Up, [][2]int{{8, 10}}, nil, 8, true},
		{"waiting ahead going down", 12, types.Down, [][2]int{{8, 10}}, nil, 8, true},
		{"nothing at all", 10, types.Down, nil, nil, 0, false},
		{"waiting only behind", 10, types.Up, [][2]int{{3, 4}}, nil, 0, false},
		{"nearer waiting wins over farther loaded", 5, types.Up, [][2]int{{6, 7}}, [][2]int{{1, 10}}, 6, true},
		{"nearer loaded wins over farther waiting", 5, types.Up, [][2]int{{7, 8}}, [][2]int{{1, 6}}, 6, true},
		{"nearer below wins going down", 9, types.Down, [][2]int{{2, 8}}, [][2]int{{9, 4}}, 4, true},
		{"waiting at current floor", 3, types.Up, [][2]int{{3, 9}, {5, 6}}, nil, 3, true},
		{"loaded at current floor", 3, types.Down, nil, [][2]int{{9, 3}}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gen types.IDGen
			waiting := asIndex(&gen, tt.waiting, true)
			loaded := asIndex(&gen, tt.loaded, false)

			got, ok := NextStop(tt.floor, tt.dir, waiting, loaded)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.want, tt.wantOk, got, ok)
			}
			again, okAgain := NextStop(tt.floor, tt.dir, waiting, loaded)
			if again != got || okAgain != ok {
				t.Errorf("Expected repeated call to give (%d, %v), got (%d, %v)", got, ok, again, okAgain)
			}
			if waiting.Len() != len(tt.waiting) || loaded.Len() != len(tt.loaded) {
				t.Errorf("Expected indices to be left untouched")
			}
		})
	}
}

func TestChooseStopTurnsAround(t *testing.T) {
	var gen types.IDGen
	waiting := asIndex(&gen, [][2]int{{2, 0}}, true)

	stop, dir, ok := chooseStop(6, types.Up, waiting, RequestIndex{})
	if !ok || stop != 2 || dir != types.Down {
		t.Errorf("Expected stop 2 heading down, got %d %v %v", stop, dir, ok)
	}

	_, dir, ok = chooseStop(6, types.Up, RequestIndex{}, RequestIndex{})
	if ok || dir != types.Down {
		t.Errorf("Expected no stop and a flipped direction, got %v %v", dir, ok)
	}
}
