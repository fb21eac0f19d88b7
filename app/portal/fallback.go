package portal

import (
	"sort"
	"strings"

	"agrimate/app/agrimate/model"
)

// Districts lists the selectable districts per state key.
var Districts = map[string][]string{
	"tamil-nadu":  {"Chennai", "Coimbatore", "Madurai", "Tiruppur", "Erode", "Salem"},
	"karnataka":   {"Bangalore", "Mysore", "Belgaum", "Hubli", "Mangalore"},
	"maharashtra": {"Mumbai", "Pune", "Nagpur", "Aurangabad", "Nashik"},
	"punjab":      {"Amritsar", "Ludhiana", "Jalandhar", "Patiala", "Bathinda"},
	"rajasthan":   {"Jaipur", "Jodhpur", "Ajmer", "Bikaner", "Kota"},
}

const (
	defaultState    = "tamil-nadu"
	defaultDistrict = "Chennai"
)

func fp(crop string, price float64, unit, market, trend, change string) model.Price {
	return model.Price{Crop: crop, Price: price, Unit: unit, Market: market, Trend: trend, Change: change}
}

// fallbackPrices is the static table used when the live fetch fails, keyed
// state → district.
var fallbackPrices = map[string]map[string][]model.Price{
	"tamil-nadu": {
		"Chennai": {
			fp("Rice", 2500, "50kg", "Koyambedu Market", "↑", "+5%"),
			fp("Coconut", 1800, "100pcs", "Koyambedu Market", "↓", "-2%"),
			fp("Sugarcane", 3200, "100kg", "Chennai Market", "↑", "+3%"),
			fp("Onion", 2000, "50kg", "Koyambedu Market", "↑", "+4%"),
		},
		"Coimbatore": {
			fp("Rice", 2400, "50kg", "Coimbatore Market", "↑", "+3%"),
			fp("Cotton", 5800, "100kg", "Coimbatore Market", "↑", "+6%"),
		},
		"Madurai": {
			fp("Rice", 2300, "50kg", "Madurai Market", "→", "0%"),
		},
		"Tiruppur": {
			fp("Rice", 2450, "50kg", "Tiruppur Market", "↑", "+4%"),
		},
		"Erode": {
			fp("Rice", 2380, "50kg", "Erode Market", "↓", "-2%"),
		},
		"Salem": {
			fp("Rice", 2420, "50kg", "Salem Market", "↑", "+2%"),
		},
	},
	"karnataka": {
		"Bangalore": {
			fp("Rice", 2600, "50kg", "Bangalore Market", "↑", "+4%"),
			fp("Coffee", 8500, "50kg", "Bangalore Market", "↑", "+4%"),
		},
		"Mysore": {
			fp("Rice", 2550, "50kg", "Mysore Market", "↑", "+2%"),
		},
		"Belgaum": {
			fp("Jowar", 2200, "50kg", "Belgaum Market", "→", "0%"),
		},
		"Hubli": {
			fp("Groundnut", 5300, "50kg", "Hubli Market", "↑", "+2%"),
		},
		"Mangalore": {
			fp("Coconut", 1900, "100pcs", "Mangalore Market", "↑", "+3%"),
		},
	},
	"maharashtra": {
		"Mumbai": {
			fp("Rice", 2700, "50kg", "Mumbai Market", "↑", "+6%"),
		},
		"Pune": {
			fp("Rice", 2650, "50kg", "Pune Market", "↑", "+3%"),
		},
		"Nagpur": {
			fp("Orange", 3500, "50kg", "Nagpur Market", "↑", "+4%"),
		},
		"Aurangabad": {
			fp("Sugarcane", 3300, "100kg", "Aurangabad Market", "↑", "+3%"),
		},
		"Nashik": {
			fp("Grape", 4500, "50kg", "Nashik Market", "↑", "+4%"),
		},
	},
	"punjab": {
		"Amritsar": {
			fp("Rice", 2200, "50kg", "Amritsar Market", "↓", "-1%"),
		},
		"Ludhiana": {
			fp("Wheat", 2100, "50kg", "Ludhiana Market", "→", "0%"),
		},
		"Jalandhar": {
			fp("Rice", 2300, "50kg", "Jalandhar Market", "↑", "+2%"),
		},
		"Patiala": {
			fp("Wheat", 2150, "50kg", "Patiala Market", "↑", "+1%"),
		},
		"Bathinda": {
			fp("Cotton", 5650, "100kg", "Bathinda Market", "↑", "+4%"),
		},
	},
	"rajasthan": {
		"Jaipur": {
			fp("Rice", 2350, "50kg", "Jaipur Market", "→", "+1%"),
		},
		"Jodhpur": {
			fp("Groundnut", 5200, "50kg", "Jodhpur Market", "↑", "+5%"),
		},
		"Ajmer": {
			fp("Mustard", 4300, "50kg", "Ajmer Market", "↑", "+4%"),
		},
		"Bikaner": {
			fp("Cumin", 9300, "50kg", "Bikaner Market", "↓", "-1%"),
		},
		"Kota": {
			fp("Cotton", 5800, "100kg", "Kota Market", "↑", "+3%"),
		},
	},
}

// FallbackPrices resolves the static table for a state/district selection.
// District lookup is case-insensitive; a miss widens to the union of the
// state's districts, and an unknown state lands on the Chennai default.
func FallbackPrices(state, district string) []model.Price {
	stateData := fallbackPrices[state]
	if district != "" {
		if prices, ok := stateData[district]; ok {
			return prices
		}
		for name, prices := range stateData {
			if strings.EqualFold(name, district) {
				return prices
			}
		}
	}
	if len(stateData) > 0 {
		names := make([]string, 0, len(stateData))
		for name := range stateData {
			names = append(names, name)
		}
		sort.Strings(names)
		var union []model.Price
		for _, name := range names {
			union = append(union, stateData[name]...)
		}
		return union
	}
	return fallbackPrices[defaultState][defaultDistrict]
}

var fallbackSchemes = []model.Scheme{
	{
		Name:        "PM FASAL Bima Yojana",
		Description: "Crop insurance scheme providing financial support in case of crop failure",
		Benefits:    "100% coverage of yield loss with subsidized premiums",
		Eligibility: "All farmers growing notified crops",
		State:       []string{model.AllIndia},
		Category:    model.CategoryInsurance,
	},
	{
		Name:        "Soil Health Card Scheme",
		Description: "Free soil testing and customized fertilizer recommendations",
		Benefits:    "Free soil testing at registered labs",
		Eligibility: "All farmers",
		State:       []string{model.AllIndia},
		Category:    model.CategoryTraining,
	},
	{
		Name:        "Subsidy for Agricultural Tools",
		Description: "Government subsidy on modern farming equipment and tools",
		Benefits:    "40-50% subsidy on tools and machinery",
		Eligibility: "Small and marginal farmers",
		State:       []string{"Tamil Nadu", "Karnataka", "Maharashtra"},
		Category:    model.CategoryEquipment,
	},
}

// FallbackSchemes filters the static scheme list by state; All India entries
// always apply. An empty state returns everything.
func FallbackSchemes(state string) []model.Scheme {
	if state == "" {
		return fallbackSchemes
	}
	var out []model.Scheme
	for _, s := range fallbackSchemes {
		for _, st := range s.State {
			if st == model.AllIndia || strings.EqualFold(st, state) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
