package utils

import (
	"fmt"
	"runtime"
)

// GetMemUsage reports process heap statistics, see
// https://golang.org/pkg/runtime/#MemStats for the field meanings.
func GetMemUsage() string {
	var (
		m   runtime.MemStats
		mib = func(b uint64) uint64 { return b >> 20 }
	)
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		mib(m.Alloc), mib(m.TotalAlloc), mib(m.Sys), m.NumGC)
}
