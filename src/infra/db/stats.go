package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStats is the subset of *pgxpool.Stat the collector reads.
type PoolStats interface {
	AcquiredConns() int32
	IdleConns() int32
	TotalConns() int32
	MaxConns() int32
	AcquireCount() int64
	EmptyAcquireCount() int64
}

// PoolCollector exports connection pool statistics as Prometheus metrics.
type PoolCollector struct {
	stat func() PoolStats

	acquired *prometheus.Desc
	idle     *prometheus.Desc
	total    *prometheus.Desc
	max      *prometheus.Desc
	acquires *prometheus.Desc
	waits    *prometheus.Desc
}

// NewPoolCollector reads a fresh snapshot from stat on every scrape.
func NewPoolCollector(stat func() PoolStats) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("jokeshare_db_pool_"+name, help, nil, nil)
	}
	return &PoolCollector{
		stat:     stat,
		acquired: desc("acquired_connections", "Connections currently checked out."),
		idle:     desc("idle_connections", "Idle connections in the pool."),
		total:    desc("total_connections", "All open connections."),
		max:      desc("max_connections", "Configured pool size."),
		acquires: desc("acquires_total", "Successful connection acquisitions."),
		waits:    desc("empty_acquires_total", "Acquisitions that had to wait for a free connection."),
	}
}

// Collector exports the stats of p's pool.
func (p *Postgres) Collector() *PoolCollector {
	return NewPoolCollector(func() PoolStats { return p.Pool.Stat() })
}

var _ PoolStats = (*pgxpool.Stat)(nil)

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{c.acquired, c.idle, c.total, c.max, c.acquires, c.waits} {
		ch <- d
	}
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stat()
	gauge := func(d *prometheus.Desc, v int32) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge(c.acquired, s.AcquiredConns())
	gauge(c.idle, s.IdleConns())
	gauge(c.total, s.TotalConns())
	gauge(c.max, s.MaxConns())
	counter(c.acquires, s.AcquireCount())
	counter(c.waits, s.EmptyAcquireCount())
}
