// Package metrics holds the Prometheus instrumentation shared by the
// ETL and API services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	ExtractedTotal     *prometheus.CounterVec
	InsertedTotal      prometheus.Counter
	UpdatedTotal       prometheus.Counter
	CategorizedTotal   *prometheus.CounterVec
	UncategorizedCount prometheus.Gauge
	RunDuration        prometheus.Summary
	RunsTotal          *prometheus.CounterVec
}

// New registers the collectors on the default registry. Call it once
// per process.
func New() *Metrics {
	m := &Metrics{}
	m.ExtractedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "eventos_extraidos_total",
		Help:      "Events fetched from the upstream chamber APIs",
	}, []string{"fonte"})
	m.InsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "eventos_inseridos_total",
		Help:      "Events inserted for the first time",
	})
	m.UpdatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "eventos_atualizados_total",
		Help:      "Events refreshed by an upsert",
	})
	m.CategorizedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "eventos_categorizados_total",
		Help:      "Events assigned a technical area, by area",
	}, []string{"area"})
	m.UncategorizedCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "agenda",
		Name:      "eventos_nao_categorizados",
		Help:      "Stored events still without a technical area",
	})
	m.RunDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "agenda",
		Name:      "etl_duracao_segundos",
		Help:      "Time spent on a full ETL cycle",
	})
	m.RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "etl_execucoes_total",
		Help:      "ETL cycles by outcome",
	}, []string{"status"})

	prometheus.MustRegister(
		m.ExtractedTotal, m.InsertedTotal, m.UpdatedTotal,
		m.CategorizedTotal, m.UncategorizedCount,
		m.RunDuration, m.RunsTotal,
	)
	return m
}
