package services

import (
	"github.com/pulseworks/pulsecheck/pkg/internal/database"
	"github.com/pulseworks/pulsecheck/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// ReconcileResponseCounters recounts every survey's responses and
// repairs the cached counter when it drifted (typically a crash between
// the response insert and the counter bump). Scheduled from main; safe
// to run at any time because analytics never reads the cached value.
func ReconcileResponseCounters() {
	var surveys []models.Survey
	if err := database.C.Find(&surveys).Error; err != nil {
		log.Error().Err(err).Msg("An error occurred when listing surveys for counter reconciliation.")
		return
	}

	for _, survey := range surveys {
		count, err := CountResponses(survey.ID)
		if err != nil {
			log.Error().Err(err).Str("survey", survey.ID).Msg("Unable to recount responses, skipping...")
			continue
		}
		if count == survey.ResponseCount {
			continue
		}

		log.Warn().
			Str("survey", survey.ID).
			Int64("cached", survey.ResponseCount).
			Int64("actual", count).
			Msg("Response counter drifted, repairing...")

		if err := database.C.Model(&models.Survey{}).
			Where("id = ?", survey.ID).
			Update("response_count", count).Error; err != nil {
			log.Error().Err(err).Str("survey", survey.ID).Msg("Unable to repair response counter.")
		}
	}
}
