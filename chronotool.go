// Chrono command line tool

package main

import (
	"bytes"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/chrono-time/base/metrics"
	"example.com/chrono-time/base/timemath"
	"example.com/chrono-time/base/zaplog"

	"example.com/chrono-time/benchmark"

	"example.com/chrono-time/core/chrono"
	"example.com/chrono-time/core/timebase"

	"example.com/chrono-time/driver/clocks"
)

const (
	clockMonotonic = "monotonic"
	clockCPU       = "cpu"

	defaultMetricsAddr    = "127.0.0.1:8080"
	defaultSampleInterval = 1.0

	defaultBenchmarkGoroutines = 1
	defaultBenchmarkSamples    = 1_000_000

	demoPrecision = 6
)

type svcConfig struct {
	MetricsAddr         string   `toml:"metrics_address,omitempty"`
	SampleInterval      float64  `toml:"sample_interval,omitempty"`
	Clocks              []string `toml:"clocks,omitempty"`
	BenchmarkGoroutines int      `toml:"benchmark_goroutines,omitempty"`
	BenchmarkSamples    int      `toml:"benchmark_samples,omitempty"`
}

var (
	log *zap.Logger
)

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
	zaplog.SetLogger(log)
}

func loadConfig(configFile string) svcConfig {
	cfg := svcConfig{
		MetricsAddr:         defaultMetricsAddr,
		SampleInterval:      defaultSampleInterval,
		Clocks:              []string{clockMonotonic, clockCPU},
		BenchmarkGoroutines: defaultBenchmarkGoroutines,
		BenchmarkSamples:    defaultBenchmarkSamples,
	}
	if configFile == "" {
		return cfg
	}
	raw, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		log.Fatal("failed to decode configuration", zap.Error(err))
	}
	for _, c := range cfg.Clocks {
		if c != clockMonotonic && c != clockCPU {
			log.Fatal("unexpected clock in configuration", zap.String("clock", c))
		}
	}
	if cfg.SampleInterval <= 0 {
		log.Fatal("sample interval must be positive",
			zap.Float64("sample_interval", cfg.SampleInterval))
	}
	return cfg
}

func spin(d time.Duration) {
	m := chrono.NewMonotonic(log)
	m.Start()
	for timemath.Duration(m.Elapsed()) < d {
	}
}

func runMonitor(configFile string) {
	cfg := loadConfig(configFile)

	mclk := clocks.NewMonotonicClock(log)
	cclk := clocks.NewCPUClock(log)
	timebase.RegisterTimeSource(mclk)

	log.Info("starting monitor",
		zap.String("metrics_address", cfg.MetricsAddr),
		zap.Strings("clocks", cfg.Clocks),
		zap.Duration("cpu_clock_resolution", cclk.Resolution()),
	)

	samples := promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.MonitorSamplesN,
		Help: metrics.MonitorSamplesH,
	})
	uptimeGauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.MonitorUptimeN,
		Help: metrics.MonitorUptimeH,
	})
	monotonicGauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.MonitorMonotonicTimeN,
		Help: metrics.MonitorMonotonicTimeH,
	})
	cpuGauge := promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.MonitorCPUTimeN,
		Help: metrics.MonitorCPUTimeH,
	})

	uptime := chrono.New(mclk)
	uptime.Start()

	go func() {
		ticker := time.NewTicker(timemath.Duration(cfg.SampleInterval))
		defer ticker.Stop()
		for range ticker.C {
			uptimeGauge.Set(uptime.Elapsed())
			if contains(cfg.Clocks, clockMonotonic) {
				monotonicGauge.Set(timebase.Now().Seconds())
			}
			if contains(cfg.Clocks, clockCPU) {
				cpuGauge.Set(cclk.Now().Seconds())
			}
			samples.Inc()
		}
	}()

	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(cfg.MetricsAddr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func runBenchmark(configFile string) {
	cfg := loadConfig(configFile)

	if contains(cfg.Clocks, clockMonotonic) {
		clk := clocks.NewMonotonicClock(log)
		log.Info("benchmarking monotonic clock")
		benchmark.RunClockBenchmark(log, clk, cfg.BenchmarkGoroutines, cfg.BenchmarkSamples)
		log.Info("benchmarking monotonic chrono cycle")
		benchmark.RunChronoBenchmark(log, clk, cfg.BenchmarkSamples)
	}
	if contains(cfg.Clocks, clockCPU) {
		clk := clocks.NewCPUClock(log)
		log.Info("benchmarking cpu clock",
			zap.Duration("resolution", clk.Resolution()))
		benchmark.RunClockBenchmark(log, clk, cfg.BenchmarkGoroutines, cfg.BenchmarkSamples)
		log.Info("benchmarking cpu chrono cycle")
		benchmark.RunChronoBenchmark(log, clk, cfg.BenchmarkSamples)
	}
}

func runDemo() {
	m := chrono.NewMonotonic(log)
	c := chrono.NewCPU(log)

	m.Start()
	c.Start()

	spin(100 * time.Millisecond)
	log.Info("after busy work",
		zap.String("monotonic", m.FormatElapsed(demoPrecision)),
		zap.String("cpu", c.FormatElapsed(demoPrecision)),
	)

	time.Sleep(100 * time.Millisecond)
	log.Info("after sleep, cpu time mostly unchanged",
		zap.String("monotonic", m.FormatElapsed(demoPrecision)),
		zap.String("cpu", c.FormatElapsed(demoPrecision)),
	)

	m.Stop()
	c.Stop()
	frozen := m.ElapsedRaw()
	time.Sleep(10 * time.Millisecond)
	log.Info("stopped, elapsed time frozen",
		zap.Stringer("state", m.State()),
		zap.Bool("frozen", m.ElapsedRaw() == frozen),
	)

	m.Resume()
	spin(10 * time.Millisecond)
	log.Info("resumed, elapsed time continues from where it left off",
		zap.String("monotonic", m.FormatElapsed(demoPrecision)),
	)

	m.Restart()
	log.Info("restarted, accumulated time discarded",
		zap.Stringer("state", m.State()),
		zap.String("monotonic", m.FormatElapsed(demoPrecision)),
	)
}

func exitWithUsage() {
	fmt.Println("usage: chronotool demo | benchmark | monitor")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
	)

	demoFlags := flag.NewFlagSet("demo", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)
	monitorFlags := flag.NewFlagSet("monitor", flag.ExitOnError)

	demoFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.StringVar(&configFile, "config", "", "Config file")

	monitorFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	monitorFlags.StringVar(&configFile, "config", "", "Config file")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case demoFlags.Name():
		err := demoFlags.Parse(os.Args[2:])
		if err != nil || demoFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runDemo()
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(configFile)
	case monitorFlags.Name():
		err := monitorFlags.Parse(os.Args[2:])
		if err != nil || monitorFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runMonitor(configFile)
	default:
		exitWithUsage()
	}
}
