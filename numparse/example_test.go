// SPDX-License-Identifier: MIT

package numparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvopt/numparse"
)

func ExampleFloats() {
	v, err := numparse.Floats("３, −1.5; 2e1")
	fmt.Println(v, err)

	_, err = numparse.Floats("3, x")
	fmt.Println(err)
	// Output:
	// [3 -1.5 20] <nil>
	// value 2: "x": numparse: malformed input
}
