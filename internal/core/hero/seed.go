// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"log/slog"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/pkg/pointer"
)

// # Demo Data

// SeedRoster is the fixed demo catalogue loaded by `heroctl seed`.
var SeedRoster = []CreateRequest{
	{Name: "Peter Parker", Alias: "Spider-Man", Powers: pointer.To("Wall-crawling, super strength, spider-sense")},
	{Name: "Tony Stark", Alias: "Iron Man", Powers: pointer.To("Genius-level intellect, powered armor suit")},
	{Name: "Steve Rogers", Alias: "Captain America", Powers: pointer.To("Peak human condition, vibranium shield mastery")},
	{Name: "Bruce Banner", Alias: "Hulk", Powers: pointer.To("Limitless strength, durability increases with anger")},
	{Name: "Natasha Romanoff", Alias: "Black Widow", Powers: pointer.To("Master spy & assassin, slowed aging")},
	{Name: "Clark Kent", Alias: "Superman", Powers: pointer.To("Flight, heat vision, invulnerability")},
	{Name: "Bruce Wayne", Alias: "Batman", Powers: pointer.To("World's greatest detective, peak human conditioning")},
	{Name: "Diana Prince", Alias: "Wonder Woman", Powers: pointer.To("Super strength, flight, lasso of truth")},
	{Name: "Barry Allen", Alias: "Flash", Powers: pointer.To("Speed Force, time travel via running")},
	{Name: "Arthur Curry", Alias: "Aquaman", Powers: pointer.To("Atlantean physiology, hydrokinesis")},
	{Name: "Reed Richards", Alias: "Mr. Fantastic", Powers: pointer.To("Elasticity, genius intellect")},
	{Name: "Sue Storm", Alias: "Invisible Woman", Powers: pointer.To("Invisibility, force-field projection")},
	{Name: "Johnny Storm", Alias: "Human Torch", Powers: pointer.To("Pyrokinesis, flight")},
	{Name: "Ben Grimm", Alias: "The Thing", Powers: pointer.To("Super strength & durability, rock-like hide")},
	{Name: "Ororo Munroe", Alias: "Storm", Powers: pointer.To("Weather manipulation, flight")},
}

// SeedReport counts the outcome of a seeding run.
type SeedReport struct {
	Inserted int
	Skipped  int
}

/*
Seed creates every hero of roster through the service.

Heroes whose alias is already taken are skipped, so running it twice is
harmless. Any other failure stops the run and is returned with the counts
reached so far.
*/
func (service *Service) Seed(context context.Context, roster []CreateRequest) (SeedReport, error) {
	var report SeedReport

	for _, input := range roster {
		_, err := service.Create(context, input)
		switch {
		case err == nil:
			report.Inserted++
		case apperr.HasCode(err, apperr.CodeAlreadyExists):
			report.Skipped++
		default:
			return report, err
		}
	}

	service.log(context).Info("heroes_seeded",
		slog.Int("inserted", report.Inserted),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}
