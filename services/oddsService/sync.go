package oddsService

import (
	"errors"

	"gorm.io/gorm"

	"parlayLeague/models"
)

// SyncWeek caches the provider's weekly board locally. Games and options are
// created when first seen; unsettled games track the provider's kickoff and
// teams, and odds on unlocked options are refreshed in place. Snapshots
// already taken on bets are never touched — they live on the bet rows.
func SyncWeek(db *gorm.DB, provider Provider, week int) ([]GameQuote, error) {
	quotes, err := provider.WeeklyOdds(week)
	if err != nil {
		return nil, err
	}

	for _, quote := range quotes {
		var game models.Game
		err := db.First(&game, "id = ?", quote.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			game = models.Game{
				ID:        quote.ID,
				HomeTeam:  quote.HomeTeam,
				AwayTeam:  quote.AwayTeam,
				StartTime: quote.StartTime,
				Week:      quote.Week,
			}
			if err := db.Create(&game).Error; err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		default:
			// Postponements move kickoff; pick that up until the game settles
			// so the lock sweep fires at the real start time.
			if !game.Settled {
				game.HomeTeam = quote.HomeTeam
				game.AwayTeam = quote.AwayTeam
				game.StartTime = quote.StartTime
				game.Week = quote.Week
				if err := db.Save(&game).Error; err != nil {
					return nil, err
				}
			}
		}

		for _, opt := range quote.Options {
			var option models.BettingOption
			err := db.Where("game_id = ? AND market_type = ? AND outcome_name = ?",
				game.ID, models.MarketH2H, opt.OutcomeName).First(&option).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				option = models.BettingOption{
					GameID:       game.ID,
					MarketType:   models.MarketH2H,
					OutcomeName:  opt.OutcomeName,
					Bookmaker:    opt.Bookmaker,
					AmericanOdds: opt.AmericanOdds,
					DecimalOdds:  opt.DecimalOdds,
				}
				if err := db.Create(&option).Error; err != nil {
					return nil, err
				}
			case err != nil:
				return nil, err
			default:
				if option.IsLocked {
					continue // locked lines never move
				}
				option.Bookmaker = opt.Bookmaker
				option.AmericanOdds = opt.AmericanOdds
				option.DecimalOdds = opt.DecimalOdds
				if err := db.Save(&option).Error; err != nil {
					return nil, err
				}
			}
		}
	}
	return quotes, nil
}
