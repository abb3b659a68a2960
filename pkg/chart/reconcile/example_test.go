package reconcile_test

import (
	"fmt"

	"github.com/matzehuels/stackbar/pkg/chart/reconcile"
)

func ExampleDiff() {
	bound := []string{"bar1", "bar2"}
	next := []string{"bar2", "bar3"}

	p := reconcile.Diff(next, func(id string, _ int) string { return id }, bound)
	enter, update, exit := p.Counts()
	fmt.Println(enter, update, exit)
	fmt.Println(p.Exit)
	// Output:
	// 1 1 1
	// [bar1]
}
