package daemon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/theirongolddev/finpulse/internal/model"
)

// metrics holds the daemon's Prometheus collectors. Each service gets its own
// registry so tests can run several services side by side.
type metrics struct {
	registry *prometheus.Registry

	wellness    prometheus.Gauge
	portfolio   prometheus.Gauge
	netWorth    prometheus.Gauge
	savingsRate prometheus.Gauge
	badges      prometheus.Gauge
	polls       prometheus.Counter
	pollErrors  prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		wellness: f.NewGauge(prometheus.GaugeOpts{
			Name: "finpulse_wellness_score",
			Help: "Wellness health score, 0-100.",
		}),
		portfolio: f.NewGauge(prometheus.GaugeOpts{
			Name: "finpulse_portfolio_score",
			Help: "Portfolio health score, 0-100.",
		}),
		netWorth: f.NewGauge(prometheus.GaugeOpts{
			Name: "finpulse_net_worth",
			Help: "Total assets minus total liabilities.",
		}),
		savingsRate: f.NewGauge(prometheus.GaugeOpts{
			Name: "finpulse_savings_rate_percent",
			Help: "All-time savings rate in percent.",
		}),
		badges: f.NewGauge(prometheus.GaugeOpts{
			Name: "finpulse_badges_unlocked",
			Help: "Number of badges currently unlocked.",
		}),
		polls: f.NewCounter(prometheus.CounterOpts{
			Name: "finpulse_daemon_polls_total",
			Help: "Total poll cycles.",
		}),
		pollErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "finpulse_daemon_poll_errors_total",
			Help: "Poll cycles that failed to load records.",
		}),
	}
}

func (m *metrics) observe(r model.Report) {
	m.wellness.Set(float64(r.Wellness.Score))
	m.portfolio.Set(float64(r.Portfolio.Score))
	m.netWorth.Set(r.NetWorth.NetWorth.InexactFloat64())
	m.savingsRate.Set(r.Rates.SavingsRate)
	m.badges.Set(float64(len(r.Feedback.Badges)))
}
