package layout_test

import (
	"fmt"

	"github.com/matzehuels/stackbar/pkg/chart"
	"github.com/matzehuels/stackbar/pkg/chart/layout"
)

func ExampleStack() {
	bar := chart.Bar{UniqueID: "bar1", Boxes: []float64{10, 20, 30}}
	legend := []string{"a", "b", "c"}

	for _, b := range layout.Stack(bar, 0, legend, chart.Config{StartIndex: 1}) {
		fmt.Printf("%s %s %v-%v\n", b.ID, b.Label, b.Y0, b.Y1)
	}
	// Output:
	// bar1:1 b 0-20
	// bar1:2 c 20-50
	// bar1:0 a 50-60
}
