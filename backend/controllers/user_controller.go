package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/middleware"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// ListUsers godoc
// @Summary List users
// @Description Admin-only paginated list of user summaries
// @Tags utilisateurs
// @Produce json
// @Success 200 {array} models.UserSummary
// @Security ApiKeyAuth
// @Router /utilisateurs/ [get]
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var users []models.User
	if err := uc.DB.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return utils.InternalError(c, "Error fetching users: %v", err)
	}
	if len(users) == 0 {
		return utils.NoContent(c)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, models.UserSummary{
			Pseudo:  user.Pseudo,
			Nom:     user.Nom,
			Prenom:  user.Prenom,
			CptDefi: user.CptDefi,
		})
	}
	return c.JSON(summaries)
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur lors de la récupération de l'utilisateur : %v", err)
	}
	return c.JSON(models.UserSummary{
		Pseudo:  user.Pseudo,
		Nom:     user.Nom,
		Prenom:  user.Prenom,
		CptDefi: user.CptDefi,
	})
}

// GetUserFull returns the whole user row, admin only.
func (uc *UserController) GetUserFull(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur lors de la récupération de l'utilisateur : %v", err)
	}
	return c.JSON(user)
}

func (uc *UserController) GetAccount(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Error fetching users: %v", err)
	}
	return c.JSON(models.UserAccount{
		Pseudo:   user.Pseudo,
		Nom:      user.Nom,
		Prenom:   user.Prenom,
		Courriel: user.Courriel,
	})
}

// GetUserPdp returns the user's current profile picture reference.
func (uc *UserController) GetUserPdp(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur lors de la récupération de l'utilisateur : %v", err)
	}
	return c.JSON(fiber.Map{
		"pseudo":      user.Pseudo,
		"pdpActuelle": user.PdpActuelle,
	})
}

// Me returns the summary of the authenticated caller.
func (uc *UserController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(models.UserSummary{
		Pseudo:  user.Pseudo,
		Nom:     user.Nom,
		Prenom:  user.Prenom,
		CptDefi: user.CptDefi,
	})
}

// DeleteUser removes the account; related rows (badges, completions,
// memberships, stats) go with it through the FK cascades.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := uc.DB.Select(clause.Associations).Delete(&user).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Utilisateur '%s' supprimé avec succès.", pseudo)
}

type updateCptDefiInput struct {
	CptDefi int `json:"cptDefi"`
}

func (uc *UserController) UpdateCptDefi(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var input updateCptDefiInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la mise à jour de cptDefi : %v", err)
	}
	if err := uc.DB.Model(&user).Update("cpt_defi", input.CptDefi).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la mise à jour de cptDefi : %v", err)
	}
	return c.JSON(user)
}

type updatePdpInput struct {
	PdpActuelle int `json:"pdpActuelle"`
}

func (uc *UserController) UpdatePdp(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")

	var input updatePdpInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la mise à jour de la photo de profil : %v", err)
	}
	if err := uc.DB.Model(&user).Update("pdp_actuelle", input.PdpActuelle).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la mise à jour de la photo de profil : %v", err)
	}
	return c.JSON(user)
}

// ListProfilePictures returns the static catalog.
func (uc *UserController) ListProfilePictures(c *fiber.Ctx) error {
	var photos []models.ProfilePicture
	if err := uc.DB.Find(&photos).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des photos de profil : %v", err)
	}
	return c.JSON(photos)
}

func (uc *UserController) GetProfilePicture(c *fiber.Ctx) error {
	idPhoto, err := c.ParamsInt("id_photo")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de photo invalide")
	}

	var photo models.ProfilePicture
	if err := uc.DB.Where("id_photo = ?", idPhoto).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Photo de profil non trouvée")
		}
		return utils.InternalError(c, "Erreur lors de la récupération de la photo de profil : %v", err)
	}
	return c.JSON(photo)
}
