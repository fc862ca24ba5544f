package site

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/resume/internal/career"
)

// Metrics lives on its own registry so tests can build many servers.
type Metrics struct {
	registry  *prom.Registry
	pageViews *prom.CounterVec
}

// NewMetrics registers the site collectors. The career gauge reads the
// formatter on every scrape and reports NaN if the range is invalid.
func NewMetrics(f *career.Formatter) *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		pageViews: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "resume",
			Name:      "page_views_total",
			Help:      "Rendered pages and fragments by route",
		}, []string{"route"}),
	}
	careerMonths := prom.NewGaugeFunc(prom.GaugeOpts{
		Namespace: "resume",
		Name:      "career_months",
		Help:      "Whole months elapsed since the career start date",
	}, func() float64 {
		d, err := f.Current()
		if err != nil {
			return math.NaN()
		}
		return float64(d.TotalMonths())
	})
	m.registry.MustRegister(m.pageViews, careerMonths)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// countViews counts successful requests to page and fragment routes.
func (m *Metrics) countViews() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		switch route {
		case "", "/metrics", "/healthz", "/static/*filepath":
			return
		}
		if c.Writer.Status() < http.StatusBadRequest {
			m.pageViews.WithLabelValues(route).Inc()
		}
	}
}
