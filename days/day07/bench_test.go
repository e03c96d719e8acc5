package day07_test

import (
	"testing"

	"github.com/Taxel/everybody-codes-2024/days/day07"
)

// BenchmarkLoops measures 2024 laps of the sample track for four chariots.
func BenchmarkLoops(b *testing.B) {
	in := chariots + "\n\n" + track
	for i := 0; i < b.N; i++ {
		w, err := day07.ParseWorld(in)
		if err != nil {
			b.Fatal(err)
		}
		w.Loops(2024)
	}
}
