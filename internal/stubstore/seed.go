package stubstore

import "context"

// Seed loads sample data covering the casings and legacy category codes the
// hosted store actually contains, so a client pointed at the stub exercises
// the same normalization paths.
func Seed(ctx context.Context, repo Repository) error {
	samples := []Record{
		{
			Name:        "Alice Johnson",
			TypeOfLeave: "VACATION",
			DateFrom:    "2025-04-09",
			DateTo:      "2025-04-12",
			Status:      "PENDING",
			Reason:      "Spring break trip",
			CreatedAt:   "2025-04-01T09:15:00Z",
		},
		{
			Name:        "Bruno Martins",
			TypeOfLeave: "SICK",
			DateFrom:    "2025-04-02",
			DateTo:      "2025-04-03",
			Status:      "approved",
			Reason:      "Flu",
			CreatedAt:   "2025-04-01T23:37:16.219Z",
		},
		{
			// Legacy writer: lowercase category, no status.
			Name:        "Carla Diaz",
			TypeOfLeave: "paternity",
			DateFrom:    "2025-05-20",
			DateTo:      "2025-06-20",
			CreatedAt:   "2025-03-28T15:00:00Z",
		},
		{
			Name:        "Deepak Rao",
			TypeOfLeave: "BEREAVEMENT",
			DateFrom:    "2025-04-15",
			DateTo:      "2025-04-17",
			Status:      "REJECTED",
			CreatedAt:   "2025-03-30T08:45:00Z",
		},
	}

	for _, rec := range samples {
		if _, err := repo.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
