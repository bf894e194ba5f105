package utils

// Service log categories accepted at write time.
var validServiceCategories = map[string]bool{
	"tyres":           true,
	"car_wash":        true,
	"car_service":     true,
	"panel_beating":   true,
	"special_service": true,
}

func IsValidServiceCategory(category string) bool {
	return validServiceCategories[category]
}
