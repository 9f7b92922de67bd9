package quadbez_test

import (
	"fmt"

	"github.com/curvekit/quadbez"
)

func Example() {
	c := quadbez.New(
		quadbez.Pt(0, 0),
		quadbez.Pt(50, 100),
		quadbez.Pt(100, 0),
	)
	fmt.Printf("midpoint: (%.0f, %.0f)\n", c.X(0.5), c.Y(0.5))

	// Walking by arc length rather than by parameter.
	t, _ := c.TAtS(0.5)
	fmt.Printf("t at half the length: %.3f\n", t)
	// Output:
	// midpoint: (50, 50)
	// t at half the length: 0.500
}

func ExampleCurve_Interpolate() {
	c := quadbez.New(quadbez.Pt(0, 0), quadbez.Pt(0, 0), quadbez.Pt(0, 0))
	if err := c.Interpolate(
		quadbez.Pt(0, 0),
		quadbez.Pt(50, 50),
		quadbez.Pt(100, 0),
	); err != nil {
		panic(err)
	}
	cp := c.ToObject()
	fmt.Printf("control point: (%.0f, %.0f)\n", cp.CX, cp.CY)
	// Output:
	// control point: (50, 100)
}
