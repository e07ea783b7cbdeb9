package benchmark

import (
	"os"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"go.uber.org/zap"

	"example.com/chrono-time/base/timemath"
	"example.com/chrono-time/base/timesource"
	"example.com/chrono-time/core/chrono"
)

const (
	minRecordableNsec = 1
	maxRecordableNsec = 50_000_000
	sigFigs           = 5
)

// RunClockBenchmark measures the per-call cost of sampling src across
// numGoroutine goroutines taking numSamples samples each and prints a
// latency histogram.
func RunClockBenchmark(log *zap.Logger, src timesource.TimeSource,
	numGoroutine, numSamples int) {
	var mu sync.Mutex
	total := hdrhistogram.New(minRecordableNsec, maxRecordableNsec, sigFigs)
	means := make([]time.Duration, 0, numGoroutine)
	sg := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numGoroutine)
	for i := numGoroutine; i > 0; i-- {
		go func() {
			defer wg.Done()
			hg := hdrhistogram.New(minRecordableNsec, maxRecordableNsec, sigFigs)
			var sum time.Duration
			<-sg
			for j := numSamples; j > 0; j-- {
				t0 := time.Now()
				_ = src.Now()
				d := time.Since(t0)
				sum += d
				err := hg.RecordValue(d.Nanoseconds())
				if err != nil {
					log.Error("failed to record histogram value", zap.Error(err))
					return
				}
			}
			mu.Lock()
			defer mu.Unlock()
			total.Merge(hg)
			means = append(means, sum/time.Duration(numSamples))
		}()
	}
	t0 := time.Now()
	close(sg)
	wg.Wait()
	total.PercentilesPrint(os.Stdout, 1, 1.0)
	log.Info("clock benchmark done",
		zap.Duration("elapsed", time.Since(t0)),
		zap.Duration("median_goroutine_mean", timemath.Median(means)),
	)
}

// RunChronoBenchmark measures the cost of a full restart/query/stop cycle
// on a chrono backed by src.
func RunChronoBenchmark(log *zap.Logger, src timesource.TimeSource, numCycles int) {
	hg := hdrhistogram.New(minRecordableNsec, maxRecordableNsec, sigFigs)
	c := chrono.New(src)
	if !c.Start() || !c.Stop() {
		panic("unexpected chrono state")
	}
	t0 := time.Now()
	for i := numCycles; i > 0; i-- {
		t1 := time.Now()
		if !c.Restart() {
			panic("unexpected chrono state")
		}
		_ = c.ElapsedRaw()
		if !c.Stop() {
			panic("unexpected chrono state")
		}
		err := hg.RecordValue(time.Since(t1).Nanoseconds())
		if err != nil {
			log.Error("failed to record histogram value", zap.Error(err))
			return
		}
	}
	hg.PercentilesPrint(os.Stdout, 1, 1.0)
	log.Info("chrono benchmark done",
		zap.Duration("elapsed", time.Since(t0)),
		zap.Float64("last_cycle_elapsed", c.Elapsed()),
	)
}
