package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/pulseworks/pulsecheck/pkg/internal"
	"github.com/pulseworks/pulsecheck/pkg/internal/cache"
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/http"
	"github.com/pulseworks/pulsecheck/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____        _           ____ _               _\n|  _ \\ _   _| |___  ___ / ___| |__   ___  ___| | __\n| |_) | | | | / __|/ _ \\ |   | '_ \\ / _ \\/ __| |/ /\n|  __/| |_| | \\__ \\  __/ |___| | | |  __/ (__|   <\n|_|    \\__,_|_|___/\\___|\\____|_| |_|\\___|\\___|_|\\_\\"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf(pkg.AppName), pkg.AppVersion)
	fmt.Printf("The employee pulse survey service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	viper.SetDefault("bind", "0.0.0.0:8447")
	// The 50-headcount fallback for departments missing from the
	// headcount table is a policy default, overridable per deployment.
	viper.SetDefault("analytics.default_headcount", 50)
	viper.SetDefault("analytics.trend_days", 30)

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Initialize cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Seed the built-in question library and templates
	if err := services.SeedQuestionLibrary(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding question library.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.ReconcileResponseCounters)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
