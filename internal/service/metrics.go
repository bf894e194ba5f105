package service

import (
	"math"
	"sort"

	"fuellogger/internal/entities"
)

// attachTripMetrics fills the derived per-entry fields on a slice of fuel
// logs spanning any number of cars. For each car, the odometer-bearing
// entries are ordered by logged_at ascending and each entry's distance is the
// delta from its predecessor's odometer. The earliest entry has no
// predecessor, and a non-increasing odometer (reset, typo, same-day refills)
// yields no metrics either: rates are only reported for positive distances.
func attachTripMetrics(logs []entities.FuelLogResponse) {
	byCar := map[int][]*entities.FuelLogResponse{}
	for i := range logs {
		l := &logs[i]
		if l.Odometer == nil {
			continue
		}
		byCar[l.CarID] = append(byCar[l.CarID], l)
	}

	for _, carLogs := range byCar {
		sort.SliceStable(carLogs, func(i, j int) bool {
			return carLogs[i].LoggedAt < carLogs[j].LoggedAt
		})
		for i := 1; i < len(carLogs); i++ {
			l, prev := carLogs[i], carLogs[i-1]
			distance := *l.Odometer - *prev.Odometer
			if distance <= 0 {
				continue
			}
			l.DistanceKM = roundPtr(distance, 1)
			l.ConsumptionPer100 = roundPtr(l.FuelAmount/distance*100, 2)
			l.RandPerKM = roundPtr(l.TotalCost/distance, 4)
			l.RandPerLitreTrip = roundPtr(l.PricePerUnit, 4)
		}
	}
}

// sortLogsNewestFirst applies the presentation order for log listings.
func sortLogsNewestFirst(logs []entities.FuelLogResponse) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].LoggedAt > logs[j].LoggedAt
	})
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func roundPtr(v float64, places int) *float64 {
	r := round(v, places)
	return &r
}
