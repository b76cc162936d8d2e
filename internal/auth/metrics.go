package auth

import "github.com/prometheus/client_golang/prometheus"

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

type Metrics struct {
	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "codebar",
				Subsystem: "auth",
				Name:      "registrations_total",
				Help:      "Total number of registration attempts",
			},
			[]string{"result"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "codebar",
				Subsystem: "auth",
				Name:      "logins_total",
				Help:      "Total number of login attempts",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.registrations, m.logins} {
		if err := registerer.Register(c); err != nil {
			return nil, err //nolint:wrapcheck //registry errors are descriptive
		}
	}

	return m, nil
}

func (m *Metrics) registration(err error) {
	m.registrations.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) login(err error) {
	m.logins.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultFailure
	}
	return resultSuccess
}
