package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	jsoniter "github.com/json-iterator/go"
	pkg "github.com/pulseworks/pulsecheck/pkg/internal"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/admin"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/api"
	"github.com/pulseworks/pulsecheck/pkg/internal/http/exts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          pkg.AppName,
		AppName:               pkg.AppName,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
	})

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: &loggerWriter{},
	}))

	exts.LinkAuthContext(app)

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/cgi/admin")

	return &App{app}
}

// Fiber for tests; Listen for the real thing.
func (v *App) Fiber() *fiber.App {
	return v.app
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

type loggerWriter struct{}

func (v *loggerWriter) Write(p []byte) (n int, err error) {
	log.Debug().Msg(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
