package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHanning, 5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleNormalized() {
	w, _ := Normalized(TypeFlat, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.25 0.25 0.25 0.25
}
