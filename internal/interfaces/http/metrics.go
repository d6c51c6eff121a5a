package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores de negócio expostos em /metrics.
type Metrics struct {
	CommandsOpened prometheus.Counter
	SalesFinalized prometheus.Counter
	registry       *prometheus.Registry
}

// NewMetrics registra os contadores em um registry próprio (sem globals).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		CommandsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "bar_commands_opened_total",
			Help: "Comandas abertas desde o início do processo.",
		}),
		SalesFinalized: factory.NewCounter(prometheus.CounterOpts{
			Name: "bar_sales_finalized_total",
			Help: "Vendas finalizadas desde o início do processo.",
		}),
		registry: reg,
	}
}

// Handler devolve o endpoint /metrics adaptado para o Fiber.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
