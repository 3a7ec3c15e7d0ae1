package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/arrx"
)

// Profiling driver: runs the map/zip/fold pipeline in a loop and writes
// a heap profile, with live pprof on :6060.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	base := arrx.FromFunc(32, func(i int) float64 { return float64(i) })
	weights := arrx.Repeat(32, 0.5)
	total := 0.0
	for i := 0; i < 10000; i++ {
		scaled := base.Map(func(v float64) float64 { return v * 2 })
		weighted := arrx.ZipWith(scaled, weights, func(a, b float64) float64 { return a * b })
		total += arrx.Fold(weighted, 0.0, func(acc, v float64) float64 { return acc + v })
	}
	log.Printf("total: %v", total)
	pprof.WriteHeapProfile(f)
}
