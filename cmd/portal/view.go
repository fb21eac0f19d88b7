package portal

import (
	"fmt"
	"os"
	"text/tabwriter"

	"agrimate/app/agrimate/model"
	portalapp "agrimate/app/portal"
)

// consoleView renders manager output as tab-aligned text, the terminal
// equivalent of the browser grid.
type consoleView struct{}

func (consoleView) Loading() {
	fmt.Println("Loading...")
}

func (consoleView) NoData() {
	fmt.Println("No data available for this location")
}

func (consoleView) RenderPrices(prices []model.Price) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CROP\tPRICE\tUNIT\tMARKET\tTREND")
	for _, p := range prices {
		fmt.Fprintf(w, "%s\t₹%.0f\t%s\t%s\t%s %s\n", p.Crop, p.Price, p.Unit, p.Market, p.Trend, p.Change)
	}
	_ = w.Flush()
}

func (consoleView) RenderSchemes(schemes []model.Scheme) {
	for _, s := range schemes {
		fmt.Printf("%s [%s]\n  %s\n  Benefits: %s\n", s.Name, s.Category, s.Description, s.Benefits)
	}
}

func (consoleView) RenderWeather(r portalapp.Report) {
	fmt.Printf("%s  %s %.0f°C  %s\n", r.City, r.Icon, r.Temperature, r.Condition)
	fmt.Printf("Humidity %.0f%%  Wind %.0f km/h  Rainfall %.0fmm  UV %.0f\n",
		r.Humidity, r.WindSpeed, r.Rainfall, r.UVIndex)
	for _, d := range r.Forecast {
		fmt.Printf("  %s  ↑%.0f° ↓%.0f°  %s\n", d.Day, d.High, d.Low, d.Condition)
	}
}
