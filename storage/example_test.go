package storage_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/storage"
	"github.com/spf13/afero"
)

func ExampleLoadFile() {
	fs := afero.NewMemMapFs()
	g := grid.MustNew([]string{"wall", "door", "floor", "wall"}, 2, 2)

	if err := storage.SaveFile(fs, "room.grid", g, storage.String); err != nil {
		panic(err)
	}
	back, err := storage.LoadFile(fs, "room.grid", storage.String)
	if err != nil {
		panic(err)
	}
	fmt.Println(back.Width(), back.Height(), back.Data())
	// Output: 2 2 [wall door floor wall]
}
