package similarity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/similarity"
)

func benchHaystack() (*grid.Grid[uint32], *grid.Grid[uint32]) {
	hay := grid.CheckersBoard(64, 4, uint32(0xFF000000), uint32(0xFFFFFFFF))
	needle := hay.SubGrid(grid.R(8, 8, 16, 16))

	return hay, needle
}

// BenchmarkFindAll_Sequential scans a 256×256 board for a 16×16 window.
func BenchmarkFindAll_Sequential(b *testing.B) {
	hay, needle := benchHaystack()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = similarity.FindAll(hay, needle, 0.9)
	}
}

// BenchmarkFindAll_Parallel runs the same scan across 4 workers.
func BenchmarkFindAll_Parallel(b *testing.B) {
	hay, needle := benchHaystack()
	s, _ := similarity.New[uint32](similarity.WithThreshold(0.9), similarity.WithWorkers(4))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.FindAllContext(context.Background(), hay, needle)
	}
}
