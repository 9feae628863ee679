package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/services"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type BadgeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewBadgeController(db *gorm.DB, cfg *config.Config) *BadgeController {
	return &BadgeController{DB: db, Cfg: cfg}
}

func (bc *BadgeController) CreateBadge(c *fiber.Ctx) error {
	var badge models.Badge
	if err := c.BodyParser(&badge); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := bc.DB.Create(&badge).Error; err != nil {
		return utils.InternalError(c, "Erreur pendant l'ajout du badge: %v", err)
	}
	return c.JSON(badge)
}

// GrantBadge gives a badge to a user; a badge already held answers 204.
func (bc *BadgeController) GrantBadge(c *fiber.Ctx) error {
	pseudo := c.Query("pseudo_utilisateur")
	idBadge := c.QueryInt("id_badge", 0)

	err := services.GrantBadge(bc.DB, pseudo, idBadge)
	if errors.Is(err, services.ErrBadgeAlreadyOwned) {
		return utils.NoContent(c)
	}
	if err != nil {
		return utils.InternalError(c, "Erreur pendant l'ajout du gain de badge: %v", err)
	}
	return c.JSON(fiber.Map{
		"message": "Badge ajouté avec succès",
		"badge":   models.UserBadge{PseudoUtilisateur: pseudo, IDBadge: idBadge},
	})
}

// DeleteUserBadges removes every badge of a user.
func (bc *BadgeController) DeleteUserBadges(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo_utilisateur")

	var gains []models.UserBadge
	if err := bc.DB.Where("pseudo_utilisateur = ?", pseudo).Find(&gains).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if len(gains) == 0 {
		return utils.NotFound(c, "Aucun badge trouvé pour cet utilisateur.")
	}
	err := bc.DB.Where("pseudo_utilisateur = ?", pseudo).Delete(&models.UserBadge{}).Error
	if err != nil {
		return utils.InternalError(c, "Erreur pendant la suppression des badges: %v", err)
	}
	return utils.Message(c, "Tous les badges ont été supprimés avec succès.")
}

// ListUserBadges returns the badge catalog entries a user holds.
func (bc *BadgeController) ListUserBadges(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var badges []models.Badge
	err := bc.DB.Model(&models.Badge{}).
		Joins("JOIN user_badges ON user_badges.id_badge = badges.id_badge").
		Where("user_badges.pseudo_utilisateur = ?", pseudo).
		Offset(skip).Limit(limit).
		Find(&badges).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des badges : %v", err)
	}
	return c.JSON(badges)
}

func (bc *BadgeController) GetBadge(c *fiber.Ctx) error {
	idBadge, err := c.ParamsInt("id_badge")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de badge invalide")
	}

	var badge models.Badge
	if err := bc.DB.Where("id_badge = ?", idBadge).First(&badge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Badge introuvable.")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return c.JSON(badge)
}

// ListBadgeHolders returns the users holding a badge.
func (bc *BadgeController) ListBadgeHolders(c *fiber.Ctx) error {
	idBadge, err := c.ParamsInt("id_badge")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de badge invalide")
	}

	var users []models.User
	err = bc.DB.Model(&models.User{}).
		Joins("JOIN user_badges ON user_badges.pseudo_utilisateur = users.pseudo").
		Where("user_badges.id_badge = ?", idBadge).
		Find(&users).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des membres du badge : %v", err)
	}
	if len(users) == 0 {
		return utils.NoContent(c)
	}

	infos := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		infos = append(infos, models.UserSummary{
			Pseudo:  user.Pseudo,
			Nom:     user.Nom,
			Prenom:  user.Prenom,
			CptDefi: user.CptDefi,
		})
	}
	return c.JSON(infos)
}
