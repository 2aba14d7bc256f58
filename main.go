package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/paulcager/sectorradar/radar"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/promlog"
	"github.com/prometheus/common/promlog/flag"
	"github.com/prometheus/common/version"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	listenAddress = kingpin.Flag("web.listen-address",
		"Address on which to expose metrics. Metrics are not served if empty.").
		Default("").String()
	metricsEndpoint        = kingpin.Flag("web.telemetry-path", "Path under which to expose metrics.").Default("/metrics").String()
	disableExporterMetrics = kingpin.Flag(
		"web.disable-exporter-metrics",
		"Exclude metrics about the exporter itself (promhttp_*, process_*, go_*).",
	).Bool()
	compassPointStr = kingpin.Flag("compass.points",
		"Direction labels of the eight sectors, counter-clockwise starting ahead.").
		Default("000,045,090,135,180,225,270,315").String()

	seed       = kingpin.Flag("generate.seed", "Random seed for generated objects; 0 seeds from the clock.").Default("0").Int64()
	minObjects = kingpin.Flag("generate.min-objects", "Minimum number of objects generated per 'g' (inclusive).").Default("1").Int()
	maxObjects = kingpin.Flag("generate.max-objects", "Maximum number of objects generated per 'g' (exclusive).").Default("3").Int()
	extent     = kingpin.Flag("generate.extent", "Generated coordinates fall in [-extent, extent).").Default("1").Float64()
	labels     = kingpin.Flag("generate.labels", "Object classes to choose from, one character each.").Default("cp").String()

	scenarioFile = kingpin.Flag("scenario.file", "JSON file of objects loaded by the 'l' command.").String()

	logger log.Logger
)

func main() {
	kingpin.Version(version.Print("sectorradar"))
	promlogConfig := &promlog.Config{}
	flag.AddFlags(kingpin.CommandLine, promlogConfig)
	kingpin.HelpFlag.Short('h')
	kingpin.CommandLine.UsageWriter(os.Stdout)
	kingpin.Parse()

	logger = promlog.New(promlogConfig)
	level.Info(logger).Log("msg", "Starting sectorradar", "version", version.Info())
	level.Debug(logger).Log("msg", "Build context", "build_context", version.BuildContext())

	compassPoints := strings.Split(*compassPointStr, ",")
	if len(compassPoints) != radar.NumSectors {
		kingpin.Fatalf("--compass.points needs %d entries, got %d", radar.NumSectors, len(compassPoints))
	}
	if len(*labels) == 0 {
		kingpin.Fatalf("--generate.labels must not be empty")
	}
	if *minObjects < 0 || *maxObjects < *minObjects {
		kingpin.Fatalf("need 0 <= --generate.min-objects <= --generate.max-objects")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	level.Info(logger).Log("seed", *seed, "compassPoints", *compassPointStr)

	gen := NewGenerator(*seed, *minObjects, *maxObjects, *extent, []byte(*labels))
	console := NewConsole(os.Stdin, os.Stdout, logger, gen)
	console.scenarioPath = *scenarioFile

	if *listenAddress != "" {
		console.exporter = NewExporter(compassPoints)
		serveMetrics(console.exporter)
	}

	if err := console.Run(); err != nil {
		level.Error(logger).Log("msg", "reading commands", "err", err)
		os.Exit(1)
	}
}

func serveMetrics(exporter *Exporter) {
	var registry = prometheus.DefaultRegisterer
	var gatherer = prometheus.DefaultGatherer
	if *disableExporterMetrics {
		reg := prometheus.NewRegistry()
		registry = reg
		gatherer = reg
	}
	registry.MustRegister(exporter)
	registry.MustRegister(version.NewCollector("sectorradar"))

	mux := http.NewServeMux()
	mux.Handle(*metricsEndpoint, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`
<html>
			<head><title>Sector Radar</title></head>
			<body>
			<h1>Sector Radar</h1>
			<p><a href="` + *metricsEndpoint + `">Metrics</a></p>
			</body>
</html>
`))
	})

	go func() {
		level.Info(logger).Log("msg", "Serving metrics", "address", *listenAddress)
		if err := http.ListenAndServe(*listenAddress, mux); err != nil {
			level.Error(logger).Log("msg", "metrics server stopped", "err", err)
		}
	}()
}
