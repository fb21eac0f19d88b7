package portal

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	portalapp "agrimate/app/portal"
	"agrimate/app/portal/widget"
	"agrimate/config"
)

// StartCmd groups the client-side features: the data managers plus the pure
// widgets, rendered on the console.
var StartCmd = &cobra.Command{
	Use:          "portal",
	Short:        "Client portal commands",
	SilenceUsage: true,
}

var (
	pricesState    string
	pricesDistrict string
	pricesCached   bool

	weatherCity string
	weatherLat  float64
	weatherLon  float64

	schemesState string

	soilPH float64
	soilN  float64
	soilP  float64
	soilK  float64

	calcYield float64
	calcPrice float64
	calcCosts float64

	pestImage string
)

var pricesCmd = &cobra.Command{
	Use:          "prices",
	Short:        "Show crop prices for a state and district",
	Example:      "agrimate portal prices --state tamil-nadu --district Chennai",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := portalapp.NewFileStorage(cfg.PortalCacheDir)
		m := portalapp.NewPricesManager(portalapp.NewClient(cfg.PortalAPIURL), consoleView{}, store)
		if pricesCached && m.LoadCached() {
			return nil
		}
		m.Load(cmd.Context(), pricesState, pricesDistrict)
		return nil
	},
}

var weatherCmd = &cobra.Command{
	Use:          "weather",
	Short:        "Show current weather and the 5-day forecast",
	Example:      "agrimate portal weather --city Chennai",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store := portalapp.NewFileStorage(cfg.PortalCacheDir)
		m := portalapp.NewWeatherManager(portalapp.NewProvider(cfg), consoleView{}, store)
		if m.LoadCached() {
			return nil
		}
		m.Load(cmd.Context(), portalapp.Query{City: weatherCity, Lat: weatherLat, Lon: weatherLon})
		return nil
	},
}

var schemesCmd = &cobra.Command{
	Use:          "schemes",
	Short:        "List government schemes, optionally for one state",
	Example:      "agrimate portal schemes --state 'Tamil Nadu'",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		m := portalapp.NewSchemesManager(portalapp.NewClient(cfg.PortalAPIURL), consoleView{})
		m.Load(context.Background(), schemesState)
		return nil
	},
}

var soilCmd = &cobra.Command{
	Use:          "soil",
	Short:        "Analyze soil readings and print amendment advice",
	Example:      "agrimate portal soil --ph 6.5 --n 250 --p 25 --k 180",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := widget.AnalyzeSoil(widget.SoilSample{
			PH:         soilPH,
			Nitrogen:   soilN,
			Phosphorus: soilP,
			Potassium:  soilK,
		})
		for _, r := range recs {
			fmt.Printf("%s\n  %s\n  Action: %s\n", r.Title, r.Details, r.Action)
		}
		return nil
	},
}

var calcCmd = &cobra.Command{
	Use:          "calc",
	Short:        "Estimate crop profitability",
	Example:      "agrimate portal calc --yield 50 --price 2500 --costs 80000",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := widget.CalculateProfitability(calcYield, calcPrice, calcCosts)
		fmt.Printf("Revenue: ₹%.0f\nCosts: ₹%.0f\nProfit: ₹%.0f\nMargin: %.2f%%\n",
			p.Revenue, p.Costs, p.Profit, p.Margin)
		return nil
	},
}

var pestCmd = &cobra.Command{
	Use:          "pest",
	Short:        "Show pest alerts, optionally analyzing a crop image",
	Example:      "agrimate portal pest --image leaf.jpg",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range portalapp.PestAlerts() {
			fmt.Printf("%s %s\n  %s\n", a.Icon, a.Name, a.Description)
		}
		if pestImage == "" {
			return nil
		}
		image, err := os.ReadFile(pestImage)
		if err != nil {
			return err
		}
		diag, err := portalapp.NewMockDiseaseDetector().Analyze(cmd.Context(), image)
		if err != nil {
			return err
		}
		fmt.Printf("\nDisease Detected: %s\nConfidence: %d%%\nRecommended Treatment: %s\n",
			diag.Name, diag.Confidence, diag.Treatment)
		return nil
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesState, "state", "", "state key, e.g. tamil-nadu")
	pricesCmd.Flags().StringVar(&pricesDistrict, "district", "", "district name")
	pricesCmd.Flags().BoolVar(&pricesCached, "cached", false, "render the cached prices when still fresh")

	weatherCmd.Flags().StringVar(&weatherCity, "city", "", "city name")
	weatherCmd.Flags().Float64Var(&weatherLat, "lat", 13.0827, "latitude when no city is given")
	weatherCmd.Flags().Float64Var(&weatherLon, "lon", 80.2707, "longitude when no city is given")

	schemesCmd.Flags().StringVar(&schemesState, "state", "", "state name")

	soilCmd.Flags().Float64Var(&soilPH, "ph", 7, "soil pH")
	soilCmd.Flags().Float64Var(&soilN, "n", 0, "nitrogen, kg/ha")
	soilCmd.Flags().Float64Var(&soilP, "p", 0, "phosphorus, kg/ha")
	soilCmd.Flags().Float64Var(&soilK, "k", 0, "potassium, kg/ha")

	calcCmd.Flags().Float64Var(&calcYield, "yield", 0, "expected yield, quintals")
	calcCmd.Flags().Float64Var(&calcPrice, "price", 0, "market price per quintal")
	calcCmd.Flags().Float64Var(&calcCosts, "costs", 0, "total cultivation costs")

	pestCmd.Flags().StringVar(&pestImage, "image", "", "crop image to analyze")

	StartCmd.AddCommand(pricesCmd, weatherCmd, schemesCmd, soilCmd, calcCmd, pestCmd)
}
