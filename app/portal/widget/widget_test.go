package widget

import (
	"testing"
)

func TestAnalyzeSoil(t *testing.T) {
	t.Run("acidic", func(t *testing.T) {
		recs := AnalyzeSoil(SoilSample{PH: 5.5, Nitrogen: 300, Phosphorus: 40, Potassium: 250})
		if recs[0].Title != "Acidic Soil" {
			t.Errorf("want Acidic Soil got %q", recs[0].Title)
		}
	})
	t.Run("alkaline", func(t *testing.T) {
		recs := AnalyzeSoil(SoilSample{PH: 8.5, Nitrogen: 300, Phosphorus: 40, Potassium: 250})
		if recs[0].Title != "Alkaline Soil" {
			t.Errorf("want Alkaline Soil got %q", recs[0].Title)
		}
	})
	t.Run("boundary pH 6 and 8 are balanced", func(t *testing.T) {
		for _, ph := range []float64{6, 8} {
			recs := AnalyzeSoil(SoilSample{PH: ph, Nitrogen: 300, Phosphorus: 40, Potassium: 250})
			if recs[0].Title != "Balanced pH" {
				t.Errorf("pH %v: want Balanced pH got %q", ph, recs[0].Title)
			}
		}
	})
	t.Run("deficiencies stack", func(t *testing.T) {
		recs := AnalyzeSoil(SoilSample{PH: 6.5, Nitrogen: 100, Phosphorus: 10, Potassium: 100})
		if len(recs) != 4 {
			t.Fatalf("want pH entry plus 3 deficiencies got %d", len(recs))
		}
		titles := map[string]bool{}
		for _, r := range recs {
			titles[r.Title] = true
		}
		for _, want := range []string{"Low Nitrogen", "Low Phosphorus", "Low Potassium"} {
			if !titles[want] {
				t.Errorf("missing %s in %v", want, titles)
			}
		}
	})
	t.Run("threshold values are sufficient", func(t *testing.T) {
		recs := AnalyzeSoil(SoilSample{PH: 6.5, Nitrogen: 280, Phosphorus: 30, Potassium: 200})
		if len(recs) != 2 {
			t.Fatalf("want balanced pH plus excellent health got %v", recs)
		}
		if recs[1].Title != "Excellent Soil Health" {
			t.Errorf("want Excellent Soil Health got %q", recs[1].Title)
		}
	})
}

func TestCalculateProfitability(t *testing.T) {
	t.Run("typical crop", func(t *testing.T) {
		got := CalculateProfitability(50, 2500, 80000)
		if got.Revenue != 125000 {
			t.Errorf("want revenue 125000 got %v", got.Revenue)
		}
		if got.Profit != 45000 {
			t.Errorf("want profit 45000 got %v", got.Profit)
		}
		if got.Margin != 36 {
			t.Errorf("want margin 36 got %v", got.Margin)
		}
	})
	t.Run("margin rounded to two decimals", func(t *testing.T) {
		got := CalculateProfitability(3, 1000, 1000)
		// profit 2000 of 3000 revenue = 66.666...
		if got.Margin != 66.67 {
			t.Errorf("want 66.67 got %v", got.Margin)
		}
	})
	t.Run("loss yields negative margin", func(t *testing.T) {
		got := CalculateProfitability(10, 100, 2000)
		if got.Profit != -1000 || got.Margin != -100 {
			t.Errorf("got %+v", got)
		}
	})
	t.Run("zero revenue", func(t *testing.T) {
		got := CalculateProfitability(0, 2500, 500)
		if got.Margin != 0 {
			t.Errorf("want margin 0 got %v", got.Margin)
		}
	})
}

func TestMatchCommand(t *testing.T) {
	t.Run("substring match", func(t *testing.T) {
		cmd, ok := MatchCommand("en", "tell me today's crop PRICES please")
		if !ok || cmd.Action != "prices" {
			t.Errorf("want prices got %+v ok=%v", cmd, ok)
		}
	})
	t.Run("first keyword wins", func(t *testing.T) {
		cmd, ok := MatchCommand("en", "weather and prices")
		if !ok || cmd.Action != "prices" {
			t.Errorf("ordered table: want prices got %+v", cmd)
		}
	})
	t.Run("tamil", func(t *testing.T) {
		cmd, ok := MatchCommand("ta", "இன்றைய விலை என்ன")
		if !ok || cmd.Action != "prices" {
			t.Errorf("want prices got %+v", cmd)
		}
	})
	t.Run("no match falls back per language", func(t *testing.T) {
		if _, ok := MatchCommand("en", "sing me a song"); ok {
			t.Error("should not match")
		}
		if FallbackReply("ta") == FallbackReply("en") {
			t.Error("fallback replies must differ per language")
		}
	})
	t.Run("unknown language uses english table", func(t *testing.T) {
		cmd, ok := MatchCommand("fr", "what is the weather")
		if !ok || cmd.Action != "weather" {
			t.Errorf("got %+v", cmd)
		}
	})
}

type memStore map[string][]byte

func (s memStore) Get(key string) ([]byte, bool) {
	v, ok := s[key]
	return v, ok
}

func (s memStore) Set(key string, value []byte) {
	s[key] = value
}

func TestTranslator(t *testing.T) {
	t.Run("defaults to english", func(t *testing.T) {
		tr := NewTranslator(memStore{})
		if tr.Language() != "en" {
			t.Errorf("want en got %q", tr.Language())
		}
		if tr.Translate("Crop Prices") != "Crop Prices" {
			t.Error("english is identity")
		}
	})
	t.Run("selection persists", func(t *testing.T) {
		store := memStore{}
		tr := NewTranslator(store)
		msg := tr.SetLanguage("hi")
		if msg != "भाषा हिंदी में बदली गई" {
			t.Errorf("got %q", msg)
		}
		if NewTranslator(store).Language() != "hi" {
			t.Error("language must survive a restart")
		}
	})
	t.Run("translates with english fallback", func(t *testing.T) {
		tr := NewTranslator(memStore{})
		tr.SetLanguage("te")
		if got := tr.Translate("Weather"); got != "వాతావరణం" {
			t.Errorf("got %q", got)
		}
		if got := tr.Translate("Some untranslated phrase"); got != "Some untranslated phrase" {
			t.Errorf("want fallback to source text got %q", got)
		}
	})
	t.Run("unsupported code ignored", func(t *testing.T) {
		tr := NewTranslator(memStore{})
		tr.SetLanguage("xx")
		if tr.Language() != "en" {
			t.Errorf("want en got %q", tr.Language())
		}
	})
}
