package report

import (
	"github.com/ethpandaops/loadreport/internal/summary"
)

func plainOptions() *summary.Options {
	return &summary.Options{EnableColors: summary.Bool(false)}
}

// sampleDocument is a small run with one nested group and two metrics.
func sampleDocument() *summary.Summary {
	return &summary.Summary{
		RootGroup: &summary.Group{
			Checks: []*summary.Check{
				{Name: "status is 200", Passes: 2},
			},
			Groups: []*summary.Group{
				{
					Name: "login",
					Checks: []*summary.Check{
						{Name: "token present", Passes: 1, Fails: 1},
					},
				},
			},
		},
		Metrics: map[string]*summary.Metric{
			"checks": {
				Type:     summary.KindRate,
				Contains: "default",
				Values:   map[string]float64{"rate": 0.75, "passes": 3, "fails": 1},
			},
			"http_reqs": {
				Type:     summary.KindCounter,
				Contains: "default",
				Values:   map[string]float64{"count": 4, "rate": 2.5},
			},
		},
	}
}
