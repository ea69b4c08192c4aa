package store

import (
	"context"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// SeedDemo fills a store with demo content for development. It is only
// meant for empty stores; existing records are left alone.
func SeedDemo(ctx context.Context, s Store) error {
	stands, err := s.ListStands(ctx, "")
	if err != nil {
		return fmt.Errorf("checking for existing stands: %w", err)
	}
	if len(stands) > 0 {
		return nil
	}

	demoStands := []model.StandInput{
		{
			Title:       "Plot RS-001",
			Description: "Level corner stand close to the main entrance, ready to build.",
			Price:       "7500.00",
			Size:        "800 sqm",
			Location:    "Riverside Estate, Phase 1",
			Features:    []string{"Corner stand", "Municipal water", "Electricity at boundary"},
		},
		{
			Title:       "Plot RS-014",
			Description: "North-facing stand overlooking the dam with mature trees.",
			Price:       "9200.00",
			Size:        "1000 sqm",
			Location:    "Riverside Estate, Phase 1",
			Status:      model.StandReserved,
			Features:    []string{"Dam views", "Mature trees"},
		},
		{
			Title:       "Plot RS-027",
			Description: "Large family stand on the ridge, sold off-plan.",
			Price:       "12800.00",
			Size:        "1200 sqm",
			Location:    "Riverside Estate, Phase 2",
			Status:      model.StandSold,
			Features:    []string{"Ridge views", "Double frontage"},
		},
	}
	for _, in := range demoStands {
		if _, err := s.CreateStand(ctx, in); err != nil {
			return fmt.Errorf("seeding stands: %w", err)
		}
	}

	demoPosts := []model.BlogPostInput{
		{
			Title:     "Phase 2 stands now selling",
			Content:   "Servicing of Phase 2 is complete and the first twenty stands are released for sale. Visit the sales office for a site tour.",
			Excerpt:   "The first twenty Phase 2 stands are released for sale.",
			Category:  "Announcements",
			Published: true,
		},
		{
			Title:    "Building guidelines update (draft)",
			Content:  "Draft revision of the estate building guidelines, pending approval by the homeowners association.",
			Excerpt:  "Draft revision of the building guidelines.",
			Category: "Estate News",
		},
	}
	for _, in := range demoPosts {
		if _, err := s.CreateBlogPost(ctx, in); err != nil {
			return fmt.Errorf("seeding blog posts: %w", err)
		}
	}

	demoImages := []model.GalleryImageInput{
		{Title: "Estate entrance", Category: "Developments", ImageURL: "/static/img/placeholder.svg"},
		{Title: "Dam at sunset", Description: "View from Phase 1", Category: "Scenery", ImageURL: "/static/img/placeholder.svg"},
		{Title: "Show house", Category: "Developments", ImageURL: "/static/img/placeholder.svg"},
	}
	for _, in := range demoImages {
		if _, err := s.CreateGalleryImage(ctx, in); err != nil {
			return fmt.Errorf("seeding gallery: %w", err)
		}
	}

	demoDownloads := []model.DownloadInput{
		{Title: "Estate brochure", FileURL: "/static/files/brochure.pdf", Category: "Brochures"},
		{Title: "House plan A2", Description: "Three bedroom plan", FileURL: "/static/files/plan-a2.pdf", Category: "House Plans"},
	}
	for _, in := range demoDownloads {
		if _, err := s.CreateDownload(ctx, in); err != nil {
			return fmt.Errorf("seeding downloads: %w", err)
		}
	}

	return nil
}
