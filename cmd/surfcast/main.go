package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"surfcast/internal/config"
	"surfcast/internal/forecast"
	"surfcast/internal/location"
	"surfcast/internal/providers/httpclient"
	"surfcast/internal/providers/openstreetmap"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorMuted   = lipgloss.Color("#6C757D")
	colorDanger  = lipgloss.Color("#FF6B6B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

func main() {
	asJSON := flag.Bool("json", false, "Print the forecast as JSON instead of the text report")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: surfcast [-json] <place>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(query, *asJSON); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(query string, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Logs go to stdout, so keep them quiet unless asked for
	if cfg.Log.Level == "info" {
		cfg.Log.Level = "error"
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	geocoderHTTP := httpclient.New(
		httpclient.TransportPolicy(cfg.Geocoder.Timeout, cfg.Geocoder.Retries, cfg.Geocoder.RetryDelay),
		cfg.Geocoder.UserAgent,
		logger,
	)
	openMeteoHTTP := httpclient.New(
		httpclient.UpstreamPolicy(cfg.OpenMeteo.Timeout, cfg.OpenMeteo.Retries, cfg.OpenMeteo.Backoff),
		cfg.Geocoder.UserAgent,
		logger,
	)

	locationSvc := location.NewLocationService(openstreetmap.NewClient(cfg.Geocoder.URL, geocoderHTTP, logger), logger)
	forecastSvc, err := forecast.NewForecastService(cfg, openMeteoHTTP, locationSvc, logger)
	if err != nil {
		return err
	}

	f, err := forecastSvc.GetForecast(ctx, query)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	}

	report := forecast.RenderText(f)
	// The report's first line is the title; style it and print the rest as is
	_, body, _ := strings.Cut(report, "\n")
	fmt.Println(titleStyle.Render("Surf Forecast: " + f.Location))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%.4f, %.4f  %s", f.Latitude, f.Longitude, f.Timezone)))
	fmt.Println(strings.TrimLeft(body, "\n"))
	fmt.Println()
	fmt.Println(mutedStyle.Render(f.SurfQualityNotes))
	return nil
}
