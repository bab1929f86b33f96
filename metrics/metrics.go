package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	col            *collector
	registry       *prometheus.Registry
	collectorMutex sync.RWMutex
)

// Init starts collecting, until it is called every recording function is a no-op
func Init() {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	col = newCollector()
	registry = prometheus.NewRegistry()
	registry.MustRegister(col)
}

// WriteTextfile writes the collected metrics to filename in the node exporter textfile format
func WriteTextfile(filename string) error {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()

	if registry == nil {
		return fmt.Errorf("metrics have not been initialised")
	}

	return prometheus.WriteToTextfile(filename, registry)
}

func ResourceTotal(resourceID string) {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()

	if col == nil {
		return
	}
	col.ResourceTotal(resourceID)
}

func ResourceSuccess(resourceID string) {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()
	if col == nil {
		return
	}
	col.ResourceSuccess(resourceID)
}

func ResourceError(resourceID, stage string) {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()

	if col == nil {
		return
	}
	col.ResourceError(resourceID, stage)
}

func ResourceEntropy(resourceID string, bits float64) {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()

	if col == nil {
		return
	}
	col.ResourceEntropy(resourceID, bits)
}

func Error(reason string) {
	collectorMutex.RLock()
	defer collectorMutex.RUnlock()

	if col == nil {
		return
	}
	col.Error(reason)
}
