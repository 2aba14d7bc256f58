package main

import (
	"sync"
	"time"

	"github.com/paulcager/sectorradar/radar"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "radar"
)

// Exporter publishes the most recent classification as Prometheus metrics.
type Exporter struct {
	mutex sync.Mutex

	directions      []string
	last            *radar.Result
	lastAt          time.Time
	classifications int

	objectCount     *prometheus.Desc
	originCount     *prometheus.Desc
	mixedCells      *prometheus.Desc
	classifyCounter *prometheus.Desc
	timestamp       *prometheus.Desc
}

// NewExporter names the sectors with directions, which must have one entry
// per sector in counter-clockwise order starting ahead.
func NewExporter(directions []string) *Exporter {
	return &Exporter{
		directions: directions,
		objectCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "objects", "count"),
			"Number of objects per direction and class in the last classification",
			[]string{"direction", "label"},
			nil),
		originCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "objects", "at_origin"),
			"Number of objects on the receiver in the last classification",
			nil,
			nil),
		mixedCells: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sectors", "mixed"),
			"Number of sectors holding more than one class",
			nil,
			nil),
		classifyCounter: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "classifications", "total"),
			"Number of classification passes",
			nil,
			nil),
		timestamp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "classification", "timestamp_seconds"),
			"Time of the last classification",
			nil,
			nil),
	}
}

// Observe records a classification result.
func (e *Exporter) Observe(res radar.Result) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.last = &res
	e.lastAt = time.Now()
	e.classifications++
}

func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.objectCount
	ch <- e.originCount
	ch <- e.mixedCells
	ch <- e.classifyCounter
	ch <- e.timestamp
}

func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	ch <- prometheus.MustNewConstMetric(e.classifyCounter, prometheus.CounterValue, float64(e.classifications))
	if e.last == nil {
		return
	}

	ch <- prometheus.MustNewConstMetric(e.timestamp, prometheus.GaugeValue, float64(e.lastAt.UnixNano())/1e9)
	ch <- prometheus.MustNewConstMetric(e.originCount, prometheus.GaugeValue, float64(e.last.AtOrigin))
	ch <- prometheus.MustNewConstMetric(e.mixedCells, prometheus.GaugeValue, float64(e.last.MixedCells()))
	for s, counts := range e.last.Counts {
		for label, n := range counts {
			ch <- prometheus.MustNewConstMetric(e.objectCount, prometheus.GaugeValue, float64(n), e.directions[s], string(label))
		}
	}
}
