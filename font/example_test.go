package font_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/font"
	"github.com/katalvlaran/gridkit/grid"
	"golang.org/x/image/font/gofont/goregular"
)

func ExampleFont_DrawString() {
	f, err := font.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}

	bitmap := grid.Flatten(f.DrawString("Go\ngrid", 12))
	fmt.Println(bitmap.Width(), bitmap.Height())
	// Output: 48 24
}
