package stock

// Status is the three-tier stock level classification.
type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Classify computes percent-remaining and status from the current and minimum
// stock levels. Thresholds: <=20% critical, <=50% warning, otherwise good.
// A minStock of zero (or less) means the item has no reorder threshold and is
// reported as 100% / good.
//
// Every write path that touches CurrentStock or MinStock must call Classify
// before persisting; status is never stored independently.
func Classify(currentStock, minStock float64) (percentRemaining float64, status Status) {
	if minStock <= 0 {
		return 100, StatusGood
	}

	percentRemaining = (currentStock / minStock) * 100

	switch {
	case percentRemaining <= 20:
		status = StatusCritical
	case percentRemaining <= 50:
		status = StatusWarning
	default:
		status = StatusGood
	}
	return percentRemaining, status
}
