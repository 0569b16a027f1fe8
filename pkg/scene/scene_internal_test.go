package scene

import (
	"testing"

	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/m-mizutani/gt"
)

func TestDespawnCompactsOrder(t *testing.T) {
	sc := New()

	// Repeated replace cycles, like a load loop, must not accumulate
	// dead tags in the insertion order.
	for i := 0; i < 100; i++ {
		root := sc.Track("table", "Table", 0, nil)
		sc.Track("lamp", "Lamp", root.Tag, nil)
		for _, obj := range sc.Tracked() {
			sc.Despawn(obj.Tag)
		}
	}

	gt.Equal(t, sc.Len(), 0)
	gt.Equal(t, len(sc.order), 0)

	// Partial despawn keeps survivors in insertion order.
	a := sc.Track("crate", "A", 0, nil)
	b := sc.Track("crate", "B", 0, nil)
	sc.Track("lamp", "BLamp", b.Tag, nil)
	c := sc.Track("crate", "C", 0, nil)

	sc.Despawn(b.Tag)
	gt.Equal(t, sc.order, []model.Tag{a.Tag, c.Tag})
}
