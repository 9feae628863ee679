package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/middleware"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/services"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type DefiController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Weekly *services.WeeklyChallengeService
}

func NewDefiController(db *gorm.DB, cfg *config.Config, weekly *services.WeeklyChallengeService) *DefiController {
	return &DefiController{DB: db, Cfg: cfg, Weekly: weekly}
}

func (dc *DefiController) CreateDefi(c *fiber.Ctx) error {
	var defi models.Challenge
	if err := c.BodyParser(&defi); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := dc.DB.Create(&defi).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout du défi : %v", err)
	}
	return c.JSON(defi)
}

func (dc *DefiController) ListDefis(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 1000)

	var defis []models.Challenge
	if err := dc.DB.Offset(skip).Limit(limit).Find(&defis).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des défis : %v", err)
	}
	return c.JSON(defis)
}

func (dc *DefiController) GetDefi(c *fiber.Ctx) error {
	idDefi, err := c.ParamsInt("id_defi")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de défi invalide")
	}

	var defi models.Challenge
	if err := dc.DB.Where("id_defi = ?", idDefi).First(&defi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Défi non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la récupération du défi : %v", err)
	}
	return c.JSON(defi)
}

func (dc *DefiController) DeleteDefi(c *fiber.Ctx) error {
	idDefi, err := c.ParamsInt("id_defi")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de défi invalide")
	}

	var defi models.Challenge
	if err := dc.DB.Where("id_defi = ?", idDefi).First(&defi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Défi non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := dc.DB.Delete(&defi).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Défi '%s' supprimé avec succès.", defi.TitreDefi)
}

// AddCompletion records a run of the authenticated user on a défi.
// Several runs per user and défi are expected; ranking takes the best.
func (dc *DefiController) AddCompletion(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	idDefi := c.QueryInt("id_defi", 0)
	temps := c.QueryFloat("temps_reussite", -1)
	if idDefi == 0 || temps < 0 {
		return utils.BadRequest(c, "id_defi et temps_reussite sont requis")
	}

	var defi models.Challenge
	if err := dc.DB.Where("id_defi = ?", idDefi).First(&defi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Défi non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	reussite := models.ChallengeCompletion{
		PseudoUtilisateur: user.Pseudo,
		IDDefi:            idDefi,
		TempsReussite:     temps,
		DateReussite:      time.Now(),
	}
	if err := dc.DB.Create(&reussite).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout de la réussite du défi : %v", err)
	}
	return c.JSON(reussite)
}

// ListCompletions returns the best time per (user, défi) pair.
func (dc *DefiController) ListCompletions(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	subquery := dc.DB.Model(&models.ChallengeCompletion{}).
		Select("pseudo_utilisateur, id_defi, MIN(temps_reussite) AS min_temps").
		Group("pseudo_utilisateur, id_defi")

	var reussites []models.ChallengeCompletion
	err := dc.DB.Model(&models.ChallengeCompletion{}).
		Joins("JOIN (?) AS best ON challenge_completions.pseudo_utilisateur = best.pseudo_utilisateur AND challenge_completions.id_defi = best.id_defi AND challenge_completions.temps_reussite = best.min_temps", subquery).
		Offset(skip).Limit(limit).
		Find(&reussites).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des réussites de défi : %v", err)
	}
	if len(reussites) == 0 {
		return utils.NoContent(c)
	}
	return c.JSON(reussites)
}

// ListUserCompletions returns every run of one user, optionally
// filtered to a single défi.
func (dc *DefiController) ListUserCompletions(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo_utilisateur")
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	query := dc.DB.Where("pseudo_utilisateur = ?", pseudo)
	if idDefi := c.QueryInt("id_defi", 0); idDefi != 0 {
		query = query.Where("id_defi = ?", idDefi)
	}

	var reussites []models.ChallengeCompletion
	if err := query.Offset(skip).Limit(limit).Find(&reussites).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des réussites de défi : %v", err)
	}
	if len(reussites) == 0 {
		return utils.NotFound(c, "Aucune réussite de défi trouvée pour cet utilisateur")
	}
	return c.JSON(reussites)
}

// ListDefiRanking returns the best time per user on one défi, ascending:
// the leaderboard the front-end displays.
func (dc *DefiController) ListDefiRanking(c *fiber.Ctx) error {
	idDefi, err := c.ParamsInt("id_defi")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de défi invalide")
	}
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	subquery := dc.DB.Model(&models.ChallengeCompletion{}).
		Select("pseudo_utilisateur, MIN(temps_reussite) AS min_temps").
		Where("id_defi = ?", idDefi).
		Group("pseudo_utilisateur")

	var reussites []models.ChallengeCompletion
	err = dc.DB.Model(&models.ChallengeCompletion{}).
		Joins("JOIN (?) AS best ON challenge_completions.pseudo_utilisateur = best.pseudo_utilisateur AND challenge_completions.temps_reussite = best.min_temps", subquery).
		Where("challenge_completions.id_defi = ?", idDefi).
		Order("challenge_completions.temps_reussite").
		Offset(skip).Limit(limit).
		Find(&reussites).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des réussites de défi : %v", err)
	}
	if len(reussites) == 0 {
		return utils.NotFound(c, "Aucune réussite de défi trouvée pour ce défi.")
	}
	return c.JSON(reussites)
}

// DeleteCompletion removes the first recorded run matching the pair.
func (dc *DefiController) DeleteCompletion(c *fiber.Ctx) error {
	pseudo := c.Query("pseudo_utilisateur")
	idDefi := c.QueryInt("id_defi", 0)

	var reussite models.ChallengeCompletion
	err := dc.DB.Where("pseudo_utilisateur = ? AND id_defi = ?", pseudo, idDefi).First(&reussite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Réussite de défi non trouvée.")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := dc.DB.Delete(&reussite).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la suppression de la réussite du défi : %v", err)
	}
	return utils.Message(c, "La réussite du défi avec l'ID %d pour l'utilisateur '%s' a été supprimée avec succès.", idDefi, pseudo)
}

// GetWeeklyChallenge returns the currently active défi number, creating
// the counter on first call.
func (dc *DefiController) GetWeeklyChallenge(c *fiber.Ctx) error {
	numero, err := dc.Weekly.CurrentNumber()
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération du numéro de défi : %v", err)
	}
	return c.JSON(fiber.Map{"numero_defi": numero})
}
