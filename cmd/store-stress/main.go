package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"

	"github.com/hollowrock/sparsestore/store"
)

// Position and Velocity are the two component types the stress test
// pushes through a pair of Storage[T] configured with opposite deletion
// policies, so both code paths (and SortAs keeping them aligned) get
// exercised under load.
type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churnRate := flag.Float64("churn", 0.01, "Fraction of live entities erased and replaced per iteration.")
	compactEvery := flag.Int("compact-every", 200, "Run Compact on the in-place storage every N iterations.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Enable profiling: cpu, mem, or fgprof (off-CPU + on-CPU wall-clock).")
	flag.Parse()

	log.Println("Starting storage stress test...")

	stop := startProfiling(*profileMode)
	defer stop()

	positions := store.NewStorage[Position]()
	velocities := store.NewStorage[Velocity](store.WithInPlaceDelete())
	alloc := newEntityAllocator()

	log.Printf("Populating storage with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		e := alloc.spawn()
		positions.Emplace(e, Position{X: rand.Float64() * 1000, Y: rand.Float64() * 1000})
		velocities.Emplace(e, Velocity{DX: rand.NormFloat64(), DY: rand.NormFloat64()})
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:     *duration,
		Entities:     *entityCount,
		ChurnRate:    *churnRate,
		CompactEvery: *compactEvery,
		GCPauseMetrics: *gcPauseMetrics,
		IterationTime: Stats{Samples: make([]time.Duration, 0)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var iterations int64

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		iterStart := time.Now()

		churnStorages(alloc, positions, velocities, *churnRate)

		positions.Sort(func(a, b store.Entity) bool {
			pa, _ := positions.Get(a)
			pb, _ := positions.Get(b)
			return pa.X < pb.X
		})
		velocities.SortAs(positions)

		iterations++
		if int(iterations)%*compactEvery == 0 {
			velocities.Compact()
		}

		report.IterationTime.Samples = append(report.IterationTime.Samples, time.Since(iterStart))
	}

	report.TotalTime = time.Since(startTime)
	report.TotalIterations = iterations
	report.IterationTime.Finalize()
	report.FinalPositionsSize = positions.Size()
	report.FinalVelocitiesSize = velocities.Size()
	report.FinalVelocitiesLive = velocities.Live()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	log.Println()
	log.Println("--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	log.Println("--- End of Report ---")
}

// churnStorages erases a random fraction of live entities from both
// storages (exercising swap_and_pop and in_place erase side by side) and
// immediately respawns the same number of fresh entities.
func churnStorages(alloc *entityAllocator, positions *store.Storage[Position], velocities *store.Storage[Velocity], rate float64) {
	live := positions.Live()
	n := int(float64(live) * rate)
	for i := 0; i < n; i++ {
		idx := rand.Intn(positions.Size())
		e := positions.At(idx)
		if e.IsNull() {
			continue
		}
		if positions.Remove(e) {
			velocities.Remove(e)
			alloc.release(e)
		}
	}
	for i := 0; i < n; i++ {
		e := alloc.spawn()
		positions.Emplace(e, Position{X: rand.Float64() * 1000, Y: rand.Float64() * 1000})
		velocities.Emplace(e, Velocity{DX: rand.NormFloat64(), DY: rand.NormFloat64()})
	}
}

// startProfiling wires pkg/profile or fgprof depending on mode, returning
// a stop function that is always safe to call (a no-op when mode is
// empty or unrecognized).
func startProfiling(mode string) func() {
	switch mode {
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		return p.Stop
	case "mem":
		p := profile.Start(profile.MemProfile, profile.ProfilePath("."))
		return p.Stop
	case "fgprof":
		f, err := os.Create("fgprof.pprof")
		if err != nil {
			log.Fatalf("fgprof: %v", err)
		}
		stopFgprof := fgprof.Start(f, fgprof.FormatPprof)
		return func() {
			_ = stopFgprof()
			_ = f.Close()
		}
	default:
		return func() {}
	}
}

// entityAllocator is deliberately minimal: the storage core is agnostic
// to how entity identifiers are minted, so the stress harness owns its
// own index/version recycling instead of reaching into the store
// package for one.
type entityAllocator struct {
	next     uint32
	versions []uint32
	free     []uint32
}

func newEntityAllocator() *entityAllocator {
	return &entityAllocator{}
}

func (a *entityAllocator) spawn() store.Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		return store.NewEntity(idx, a.versions[idx])
	}
	idx := a.next
	a.next++
	a.versions = append(a.versions, 0)
	return store.NewEntity(idx, 0)
}

func (a *entityAllocator) release(e store.Entity) {
	idx := e.Index()
	a.versions[idx]++
	a.free = append(a.free, idx)
}
