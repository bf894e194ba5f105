package entities

// ServiceCategoryTotal is one row of the per-category service cost breakdown.
type ServiceCategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// StatsResponse aggregates lifetime fuel statistics over a scope (all cars or
// one car). Distance and rate fields are nil unless the scope contains at
// least two distinct odometer readings with a positive span.
type StatsResponse struct {
	TotalEntries         int      `json:"total_entries"`
	TotalFuel            float64  `json:"total_fuel"`
	TotalSpent           float64  `json:"total_spent"`
	AvgPricePerUnit      float64  `json:"avg_price_per_unit"`
	FirstOdo             *float64 `json:"first_odo"`
	LastOdo              *float64 `json:"last_odo"`
	TotalDistanceKM      *float64 `json:"total_distance_km"`
	AvgConsumptionPer100 *float64 `json:"avg_consumption_per100"`
	OverallRandPerKM     *float64 `json:"overall_rand_per_km"`
	OverallRandPerLitre  *float64 `json:"overall_rand_per_litre"`

	ServiceBreakdown []ServiceCategoryTotal `json:"service_breakdown"`
	TotalServiceCost float64                `json:"total_service_cost"`
}
