// SPDX-License-Identifier: MIT
package eigen_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lepy/active-subspaces/eigen"
)

// ExampleSorted shows the descending order and the sign convention.
func ExampleSorted() {
	c := mat.NewSymDense(2, []float64{
		2, -1,
		-1, 2,
	})
	d, _ := eigen.Sorted(eigen.Gonum{}, c)
	fmt.Printf("%.3f %.3f\n", d.Values[0], d.Values[1])
	fmt.Printf("%.3f %.3f\n", d.Vectors.At(0, 0), d.Vectors.At(1, 0))
	// Output:
	// 3.000 1.000
	// 0.707 -0.707
}
