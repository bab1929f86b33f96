package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type collector struct {
	resourceTotalMetric   *prometheus.Desc
	resourceSuccessMetric *prometheus.Desc
	resourceErrorsMetric  *prometheus.Desc
	resourceEntropyMetric *prometheus.Desc
	errorsMetric          *prometheus.Desc

	// resource{Totals,Successes} tracks counts of generations per resource ID, and whether they succeeded.
	resourceTotals    map[string]int64
	resourceSuccesses map[string]int64

	// resourceErrors tracks failures per resource ID and the stage they failed at.
	resourceErrors map[string]map[string]int64

	// resourceEntropy is the estimated entropy in bits of the last secret generated per resource ID.
	resourceEntropy map[string]float64

	// errors tracks counts of generation failures by reason.
	errors map[string]int64

	metricsMutex sync.RWMutex
}

func newCollector() *collector {
	return &collector{
		resourceTotalMetric: prometheus.NewDesc("passgen_sidekick_resource_total_counter",
			"passgen_sidekick_resource_total_counter",
			[]string{"resource_id"},
			nil,
		),
		resourceSuccessMetric: prometheus.NewDesc("passgen_sidekick_resource_success_counter",
			"passgen_sidekick_resource_success_counter",
			[]string{"resource_id"},
			nil,
		),
		resourceErrorsMetric: prometheus.NewDesc("passgen_sidekick_resource_error_counter",
			"passgen_sidekick_resource_error_counter",
			[]string{"resource_id", "stage"},
			nil,
		),
		resourceEntropyMetric: prometheus.NewDesc("passgen_sidekick_resource_entropy_bits",
			"estimated entropy in bits of the generated resource",
			[]string{"resource_id"},
			nil,
		),
		errorsMetric: prometheus.NewDesc("passgen_sidekick_error_counter",
			"passgen_sidekick_error_counter",
			[]string{"reason"},
			nil,
		),

		resourceTotals:    make(map[string]int64),
		resourceSuccesses: make(map[string]int64),
		resourceErrors:    make(map[string]map[string]int64),
		resourceEntropy:   make(map[string]float64),

		errors: make(map[string]int64),
	}
}

func (c *collector) ResourceTotal(resourceID string) {
	c.metricsMutex.Lock()
	c.resourceTotals[resourceID]++
	c.metricsMutex.Unlock()
}

func (c *collector) ResourceSuccess(resourceID string) {
	c.metricsMutex.Lock()
	c.resourceSuccesses[resourceID]++
	c.metricsMutex.Unlock()
}

func (c *collector) ResourceError(resourceID, stage string) {
	c.metricsMutex.Lock()
	if _, found := c.resourceErrors[resourceID]; !found {
		c.resourceErrors[resourceID] = make(map[string]int64)
	}
	c.resourceErrors[resourceID][stage]++
	c.metricsMutex.Unlock()
}

func (c *collector) ResourceEntropy(resourceID string, bits float64) {
	c.metricsMutex.Lock()
	c.resourceEntropy[resourceID] = bits
	c.metricsMutex.Unlock()
}

func (c *collector) Error(reason string) {
	c.metricsMutex.Lock()
	c.errors[reason]++
	c.metricsMutex.Unlock()
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.resourceTotalMetric
	ch <- c.resourceSuccessMetric
	ch <- c.resourceErrorsMetric
	ch <- c.resourceEntropyMetric
	ch <- c.errorsMetric
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.metricsMutex.RLock()
	defer c.metricsMutex.RUnlock()

	for resourceID, totalCount := range c.resourceTotals {
		ch <- prometheus.MustNewConstMetric(c.resourceTotalMetric, prometheus.CounterValue, float64(totalCount),
			resourceID)
	}

	for resourceID, successCount := range c.resourceSuccesses {
		ch <- prometheus.MustNewConstMetric(c.resourceSuccessMetric, prometheus.CounterValue, float64(successCount),
			resourceID)
	}

	for resourceID, stages := range c.resourceErrors {
		for stage, errCount := range stages {
			ch <- prometheus.MustNewConstMetric(c.resourceErrorsMetric, prometheus.CounterValue, float64(errCount),
				resourceID, stage)
		}
	}

	for resourceID, bits := range c.resourceEntropy {
		ch <- prometheus.MustNewConstMetric(c.resourceEntropyMetric, prometheus.GaugeValue, bits, resourceID)
	}

	for reason, errCount := range c.errors {
		ch <- prometheus.MustNewConstMetric(c.errorsMetric, prometheus.CounterValue, float64(errCount),
			reason)
	}
}
