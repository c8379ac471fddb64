package services

import (
	"math"

	"partnerhub/internal/models"
)

// ComputeKPIs reduces one manager's partner metrics and logged interactions into the four
// display scores. metrics holds one entry per owned partner; a nil entry is a partner
// without a metrics row and counts as zero.
func ComputeKPIs(metrics []*models.PartnerMetrics, interactions []models.Interaction) models.KPIs {
	var kpis models.KPIs

	var roiSum float64
	for _, m := range metrics {
		if m == nil {
			continue
		}
		kpis.Sales += m.Sales
		kpis.Reservations += m.Reservations
		roiSum += m.ROI.InexactFloat64()
	}

	var avgROI float64
	if len(metrics) > 0 {
		avgROI = roiSum / float64(len(metrics))
	}

	var totalMinutes, qualitySum int
	for _, interaction := range interactions {
		totalMinutes += interaction.Duration
		qualitySum += interaction.Quality
	}

	kpis.Effort = min(EFFORT_MAX, totalMinutes/EFFORT_MINUTES_PER_POINT)

	var avgQuality float64
	if len(interactions) > 0 {
		avgQuality = float64(qualitySum) / float64(len(interactions))
	}
	kpis.Relationship = int(math.Floor(avgQuality * RELATIONSHIP_SCALE))

	// not clamped: a tiny effort with a large roi yields a large index
	var ieg float64
	if kpis.Effort > 0 {
		ieg = avgROI / float64(kpis.Effort)
	}
	kpis.IEG = math.Round(ieg*100) / 100
	kpis.ROI = int(math.Floor(avgROI))

	return kpis
}
