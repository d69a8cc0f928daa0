package piece_test

import (
	"testing"

	"github.com/katalvlaran/happycube/piece"
)

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = piece.New(sampleCode)
	}
}

// BenchmarkOrientations measures deriving all eight views of one piece.
func BenchmarkOrientations(b *testing.B) {
	p := piece.MustNew(sampleCode)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = piece.Orientations(p)
	}
}
