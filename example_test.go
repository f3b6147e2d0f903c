package dataprep_test

import (
	"fmt"

	"github.com/Gobd/dataprep"
)

func ExampleClean() {
	values := []dataprep.Value{
		dataprep.Number(1),
		dataprep.Missing(),
		dataprep.Text(""),
		dataprep.Number(2),
	}
	fmt.Println(dataprep.Clean(values))
	// Output: [1 2]
}

func ExampleMinMaxNormalize() {
	fmt.Println(dataprep.MinMaxNormalize([]float64{1, 2, 3, 4, 5}, 0, 1))
	// Output: [0 0.25 0.5 0.75 1]
}

func ExampleTokenize() {
	fmt.Println(dataprep.Tokenize("Hello, World! This is a test."))
	// Output: [hello world this is a test]
}

func ExampleShuffleSeeded() {
	shuffled := dataprep.ShuffleSeeded([]string{"a", "b", "c"}, 1)
	again := dataprep.ShuffleSeeded([]string{"a", "b", "c"}, 1)
	fmt.Println(len(shuffled), fmt.Sprint(shuffled) == fmt.Sprint(again))
	// Output: 3 true
}
