package frame_test

import (
	"fmt"

	"github.com/katalvlaran/cmcutils/frame"
)

// ExampleConcatSeries shows two per-fold mean vectors being appended.
func ExampleConcatSeries() {
	fold0, _ := frame.NewSeries("mean", []string{"age"}, []float64{31})
	fold1, _ := frame.NewSeries("mean", []string{"bmi"}, []float64{24.5})

	joined, _ := frame.ConcatSeries(fold0, fold1)
	fmt.Println(joined)
	// Output: Series(mean) age=31 bmi=24.5
}
