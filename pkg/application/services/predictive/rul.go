package predictive

import (
	"context"
	"fmt"

	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/dto"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/application/services/shared"
	"github.com/Shyams728/maintanance-analytics-dashboard/pkg/domain/entities"
)

// healthyRULDays is the predicted life above which equipment is reported healthy
const healthyRULDays = 40.0

// RULPredictor is the external remaining-useful-life model
type RULPredictor interface {
	PredictRUL(ctx context.Context, temperatureC, vibrationMmS float64) (float64, error)
}

// RULLabel formats a remaining-useful-life prediction for display
func RULLabel(days float64) string {
	if days > healthyRULDays {
		return "Healthy (> 40 days)"
	}
	return fmt.Sprintf("%.1f days", days)
}

// EstimateRUL asks the predictor for the remaining useful life of each piece
// of equipment, using the average temperature and peak vibration of its
// latest sensor window. Results are ordered by equipment ID.
func (s *PredictiveService) EstimateRUL(
	ctx context.Context,
	predictor RULPredictor,
	readings []*entities.SensorReading,
) ([]dto.RULEstimate, error) {
	windows := windowFeatures(readings, s.thresholds.SensorWindowHours)

	estimates := make([]dto.RULEstimate, 0, len(windows))
	for _, id := range shared.SortedKeys(windows) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w := windows[id]
		if w.count == 0 {
			continue
		}
		days, err := predictor.PredictRUL(ctx, w.tempSum/float64(w.count), w.maxVib)
		if err != nil {
			return nil, fmt.Errorf("failed to predict RUL for %s: %w", id, err)
		}
		estimates = append(estimates, dto.RULEstimate{
			EquipmentID: id,
			Days:        shared.Round(days, 1),
			Label:       RULLabel(days),
		})
	}
	return estimates, nil
}
