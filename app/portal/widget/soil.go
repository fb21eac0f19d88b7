package widget

// SoilSample carries the four readings a farmer enters from a soil health
// card. N, P and K are in kg per hectare.
type SoilSample struct {
	PH         float64
	Nitrogen   float64
	Phosphorus float64
	Potassium  float64
}

type Recommendation struct {
	Title   string
	Details string
	Action  string
}

// AnalyzeSoil turns a sample into amendment advice. pH outside [6, 8] needs
// correction; N, P, K below 280/30/200 are deficient.
func AnalyzeSoil(s SoilSample) []Recommendation {
	var recs []Recommendation

	switch {
	case s.PH < 6:
		recs = append(recs, Recommendation{
			Title:   "Acidic Soil",
			Details: "Your soil is too acidic. Apply lime to neutralize the acidity.",
			Action:  "Add 2-3 tons of lime per acre",
		})
	case s.PH > 8:
		recs = append(recs, Recommendation{
			Title:   "Alkaline Soil",
			Details: "Your soil is too alkaline. Apply sulfur to reduce pH.",
			Action:  "Add 500-1000 kg sulfur per acre",
		})
	default:
		recs = append(recs, Recommendation{
			Title:   "Balanced pH",
			Details: "Your soil pH is ideal for most crops.",
			Action:  "Maintain current pH level",
		})
	}

	if s.Nitrogen < 280 {
		recs = append(recs, Recommendation{
			Title:   "Low Nitrogen",
			Details: "Apply nitrogen-rich fertilizers or organic manure.",
			Action:  "Add 100-150 kg N per acre",
		})
	}
	if s.Phosphorus < 30 {
		recs = append(recs, Recommendation{
			Title:   "Low Phosphorus",
			Details: "Add phosphate fertilizers for better crop growth.",
			Action:  "Add 50-75 kg P₂O₅ per acre",
		})
	}
	if s.Potassium < 200 {
		recs = append(recs, Recommendation{
			Title:   "Low Potassium",
			Details: "Apply potassium-rich fertilizers.",
			Action:  "Add 40-60 kg K₂O per acre",
		})
	}

	if len(recs) == 1 && s.Nitrogen >= 280 && s.Phosphorus >= 30 && s.Potassium >= 200 {
		recs = append(recs, Recommendation{
			Title:   "Excellent Soil Health",
			Details: "Your soil has balanced nutrients. Continue maintaining good practices.",
			Action:  "Regular organic matter addition recommended",
		})
	}
	return recs
}
