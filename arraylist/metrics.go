package arraylist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listsCreated = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "arraylist_created_total",
		Help: "The total number of lists created",
	}, []string{"list"})

	listGrowths = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "arraylist_grow_total",
		Help: "The total number of times a list doubled its capacity",
	}, []string{"list"})

	listCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "arraylist_capacity",
		Help: "The capacity of the most recently created or grown list",
	}, []string{"list"})
)
