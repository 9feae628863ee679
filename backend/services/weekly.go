package services

import (
	"errors"
	"log"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yipfram/DidactypoBack/backend/models"
)

// WeeklyChallengeService owns the défi-de-la-semaine counter and the
// rank-based badge attribution that closes each week.
type WeeklyChallengeService struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewWeeklyChallengeService(db *gorm.DB, logger *log.Logger) *WeeklyChallengeService {
	return &WeeklyChallengeService{DB: db, Logger: logger}
}

// CurrentNumber returns the active challenge number, creating the
// counter at 1 when it does not exist yet.
func (s *WeeklyChallengeService) CurrentNumber() (int, error) {
	var semaine models.WeeklyChallenge
	err := s.DB.First(&semaine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		semaine = models.WeeklyChallenge{NumeroDefi: 1}
		if err := s.DB.Create(&semaine).Error; err != nil {
			return 0, err
		}
		return semaine.NumeroDefi, nil
	}
	if err != nil {
		return 0, err
	}
	return semaine.NumeroDefi, nil
}

// Rotate runs the weekly transition. With no counter row it creates the
// counter at 1 and grants nothing. Otherwise it attributes badges for
// the week that is closing, then advances the counter. A failed
// attribution is logged and does not block the advance: the week has
// ended either way, and a stuck counter would block every user.
func (s *WeeklyChallengeService) Rotate() error {
	var semaine models.WeeklyChallenge
	err := s.DB.First(&semaine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&models.WeeklyChallenge{NumeroDefi: 1}).Error
	}
	if err != nil {
		return err
	}

	if err := s.AttributeRankingBadges(semaine.NumeroDefi); err != nil {
		s.Logger.Printf("attribution des badges du défi %d: %v", semaine.NumeroDefi, err)
	}

	// Single-statement increment so an overlapping run cannot lose an
	// update between read and write.
	return s.DB.Model(&models.WeeklyChallenge{}).
		Where("id = ?", semaine.ID).
		UpdateColumn("numero_defi", gorm.Expr("numero_defi + 1")).Error
}

// AttributeRankingBadges ranks every completion of the given défi by
// elapsed time ascending, keeps the best run per user, and grants
// or/argent/bronze to the top 10 distinct users. All grants land in one
// transaction; already-held badges are conflict-ignored.
func (s *WeeklyChallengeService) AttributeRankingBadges(idDefi int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reussites []models.ChallengeCompletion
		if err := tx.Where("id_defi = ?", idDefi).Find(&reussites).Error; err != nil {
			return err
		}
		if len(reussites) == 0 {
			s.Logger.Printf("aucune réussite trouvée pour le défi %d", idDefi)
			return nil
		}

		// Stable sort keeps fetch order between equal times, so the
		// earlier run wins ties.
		sort.SliceStable(reussites, func(i, j int) bool {
			return reussites[i].TempsReussite < reussites[j].TempsReussite
		})

		classes := make(map[string]struct{})
		position := 0
		var gains []models.UserBadge

		for _, reussite := range reussites {
			pseudo := reussite.PseudoUtilisateur
			if _, vu := classes[pseudo]; vu {
				continue
			}
			classes[pseudo] = struct{}{}
			position++
			if position > 10 {
				break
			}

			if position == 1 {
				gains = append(gains, models.UserBadge{PseudoUtilisateur: pseudo, IDBadge: models.BadgeOr})
			}
			if position <= 5 {
				gains = append(gains, models.UserBadge{PseudoUtilisateur: pseudo, IDBadge: models.BadgeArgent})
			}
			gains = append(gains, models.UserBadge{PseudoUtilisateur: pseudo, IDBadge: models.BadgeBronze})
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&gains).Error
	})
}
