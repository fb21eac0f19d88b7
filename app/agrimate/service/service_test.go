package service

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrimate/app/agrimate/model"
)

func TestPriceFilter(t *testing.T) {
	t.Run("both present", func(t *testing.T) {
		filter := PriceFilter("Tamil Nadu", "Chennai")
		if filter["state"] != "Tamil Nadu" {
			t.Errorf("want Tamil Nadu got %v", filter["state"])
		}
		if filter["district"] != "Chennai" {
			t.Errorf("want Chennai got %v", filter["district"])
		}
	})
	t.Run("absent parameters omitted", func(t *testing.T) {
		filter := PriceFilter("", "")
		if len(filter) != 0 {
			t.Errorf("want empty filter got %v", filter)
		}
	})
	t.Run("district only", func(t *testing.T) {
		filter := PriceFilter("", "Pune")
		if _, ok := filter["state"]; ok {
			t.Error("state should be omitted, not matched against null")
		}
		if filter["district"] != "Pune" {
			t.Errorf("want Pune got %v", filter["district"])
		}
	})
}

func TestSchemeStateFilter(t *testing.T) {
	filter := SchemeStateFilter("Tamil Nadu")
	in, ok := filter["state"].(bson.M)
	if !ok {
		t.Fatalf("want $in clause got %v", filter["state"])
	}
	states, ok := in["$in"].([]string)
	if !ok || len(states) != 2 {
		t.Fatalf("want two states got %v", in["$in"])
	}
	if states[0] != "Tamil Nadu" || states[1] != model.AllIndia {
		t.Errorf("want [Tamil Nadu, All India] got %v", states)
	}
}

func TestEligibilityFilter(t *testing.T) {
	filter := EligibilityFilter("Karnataka", 2.5)
	t.Run("inclusive lower bound", func(t *testing.T) {
		min, ok := filter["minLandHolding"].(bson.M)
		if !ok {
			t.Fatalf("want range clause got %v", filter["minLandHolding"])
		}
		if v, ok := min["$lte"]; !ok || v != 2.5 {
			t.Errorf("want $lte 2.5 got %v", min)
		}
	})
	t.Run("inclusive upper bound", func(t *testing.T) {
		max, ok := filter["maxLandHolding"].(bson.M)
		if !ok {
			t.Fatalf("want range clause got %v", filter["maxLandHolding"])
		}
		if v, ok := max["$gte"]; !ok || v != 2.5 {
			t.Errorf("want $gte 2.5 got %v", max)
		}
	})
}

func TestSanitizeUpdate(t *testing.T) {
	t.Run("strips client ids", func(t *testing.T) {
		doc := SanitizeUpdate(map[string]interface{}{
			"_id":   "abc",
			"id":    "abc",
			"name":  "New name",
			"state": "Punjab",
		})
		if _, ok := doc["_id"]; ok {
			t.Error("_id must be stripped")
		}
		if _, ok := doc["id"]; ok {
			t.Error("id must be stripped")
		}
		if doc["name"] != "New name" {
			t.Errorf("want New name got %v", doc["name"])
		}
	})
	t.Run("stamps updatedAt", func(t *testing.T) {
		doc := SanitizeUpdate(map[string]interface{}{"name": "x"})
		ts, ok := doc["updatedAt"].(time.Time)
		if !ok {
			t.Fatalf("want time.Time got %T", doc["updatedAt"])
		}
		if time.Since(ts) > time.Minute {
			t.Errorf("updatedAt not fresh: %v", ts)
		}
	})
	t.Run("partial merge only", func(t *testing.T) {
		doc := SanitizeUpdate(map[string]interface{}{"district": "Madurai"})
		// district + updatedAt, nothing else
		if len(doc) != 2 {
			t.Errorf("want 2 fields got %v", doc)
		}
	})
}

func TestRecommendCrops(t *testing.T) {
	rainfall := func(v float64) *float64 { return &v }
	t.Run("neutral pH", func(t *testing.T) {
		got := RecommendCrops(6.5, nil)
		want := []string{"Rice", "Wheat", "Maize"}
		if len(got) != len(want) {
			t.Fatalf("want %v got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("index %d: want %s got %s", i, want[i], got[i])
			}
		}
	})
	t.Run("alkaline", func(t *testing.T) {
		got := RecommendCrops(7.5, nil)
		if got[0] != "Sugarcane" || got[1] != "Cotton" {
			t.Errorf("want [Sugarcane Cotton] got %v", got)
		}
	})
	t.Run("acidic", func(t *testing.T) {
		got := RecommendCrops(5.5, nil)
		if got[0] != "Tea" || got[1] != "Coffee" {
			t.Errorf("want [Tea Coffee] got %v", got)
		}
	})
	t.Run("boundary pH 6 and 7 are neutral", func(t *testing.T) {
		for _, ph := range []float64{6, 7} {
			got := RecommendCrops(ph, nil)
			if got[0] != "Rice" {
				t.Errorf("pH %v: want Rice first got %v", ph, got)
			}
		}
	})
	t.Run("high rainfall deduplicates", func(t *testing.T) {
		got := RecommendCrops(6.5, rainfall(1200))
		count := 0
		for _, c := range got {
			if c == "Rice" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("want Rice once got %d occurrences in %v", count, got)
		}
	})
	t.Run("low rainfall adds millets", func(t *testing.T) {
		got := RecommendCrops(6.5, rainfall(300))
		found := false
		for _, c := range got {
			if c == "Millets" {
				found = true
			}
		}
		if !found {
			t.Errorf("want Millets in %v", got)
		}
	})
}

func TestInitUserDocument(t *testing.T) {
	t.Run("stamps id and timestamps", func(t *testing.T) {
		got := InitUserDocument(model.User{Name: "Asha", Email: "asha@example.com"})
		if got.ID.IsZero() {
			t.Error("id must be assigned")
		}
		if time.Since(got.CreatedAt) > time.Minute {
			t.Errorf("createdAt not fresh: %v", got.CreatedAt)
		}
		if !got.UpdatedAt.Equal(got.CreatedAt) {
			t.Errorf("createdAt %v and updatedAt %v must match on create", got.CreatedAt, got.UpdatedAt)
		}
	})
	t.Run("client-supplied arrays reset", func(t *testing.T) {
		got := InitUserDocument(model.User{
			BookmarkedSchemes: []primitive.ObjectID{primitive.NewObjectID()},
			SoilTestResults:   []model.SoilTestResult{{PH: 5}},
		})
		if got.BookmarkedSchemes == nil || len(got.BookmarkedSchemes) != 0 {
			t.Errorf("want empty bookmark set got %v", got.BookmarkedSchemes)
		}
		if got.SoilTestResults == nil || len(got.SoilTestResults) != 0 {
			t.Errorf("want empty soil history got %v", got.SoilTestResults)
		}
	})
}

func TestStampSoilTest(t *testing.T) {
	clientDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	got := StampSoilTest(model.SoilTestResult{
		PH:       6.5,
		Nitrogen: 290,
		TestDate: clientDate,
	})
	if got.TestDate.Equal(clientDate) {
		t.Error("client-supplied testDate must be overwritten")
	}
	if time.Since(got.TestDate) > time.Minute {
		t.Errorf("testDate not fresh: %v", got.TestDate)
	}
	if got.PH != 6.5 || got.Nitrogen != 290 {
		t.Errorf("readings must be preserved: %+v", got)
	}
}

func TestDeriveStats(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	user := model.User{
		LandHolding:     3.5,
		CropsCultivated: []string{"Rice", "Cotton"},
		SoilTestResults: []model.SoilTestResult{{PH: 6.5}},
		CreatedAt:       created,
	}
	stats := DeriveStats(user)
	if stats.CropsCultivated != 2 {
		t.Errorf("want 2 crops got %d", stats.CropsCultivated)
	}
	if stats.BookmarkedSchemes != 0 {
		t.Errorf("want 0 bookmarks got %d", stats.BookmarkedSchemes)
	}
	if stats.SoilTestsDone != 1 {
		t.Errorf("want 1 soil test got %d", stats.SoilTestsDone)
	}
	if !stats.MemberSince.Equal(created) {
		t.Errorf("want %v got %v", created, stats.MemberSince)
	}
}

func TestSampleData(t *testing.T) {
	t.Run("schemes carry valid bounds", func(t *testing.T) {
		for _, s := range sampleSchemes {
			if s.MinLandHolding > s.MaxLandHolding {
				t.Errorf("%s: min %v > max %v", s.Name, s.MinLandHolding, s.MaxLandHolding)
			}
			if len(s.State) == 0 {
				t.Errorf("%s: no states", s.Name)
			}
		}
	})
	t.Run("crops carry seasons", func(t *testing.T) {
		for _, c := range sampleCrops {
			if c.Season == "" {
				t.Errorf("%s: no season", c.Name)
			}
		}
	})
}
