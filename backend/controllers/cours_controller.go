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

type CoursController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursController(db *gorm.DB, cfg *config.Config) *CoursController {
	return &CoursController{DB: db, Cfg: cfg}
}

func (cc *CoursController) CreateCours(c *fiber.Ctx) error {
	var cours models.Course
	if err := c.BodyParser(&cours); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := cc.DB.Create(&cours).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout du cours : %v", err)
	}
	return c.JSON(cours)
}

func (cc *CoursController) ListCours(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var cours []models.Course
	if err := cc.DB.Offset(skip).Limit(limit).Find(&cours).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des cours : %v", err)
	}
	return c.JSON(cours)
}

func (cc *CoursController) GetCours(c *fiber.Ctx) error {
	idCours, err := c.ParamsInt("id_cours")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de cours invalide")
	}

	var cours models.Course
	if err := cc.DB.Where("id_cours = ?", idCours).First(&cours).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cours non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la récupération du cours : %v", err)
	}
	return c.JSON(cours)
}

func (cc *CoursController) DeleteCours(c *fiber.Ctx) error {
	idCours, err := c.ParamsInt("id_cours")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de cours invalide")
	}

	var cours models.Course
	if err := cc.DB.Where("id_cours = ?", idCours).First(&cours).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cours non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := cc.DB.Delete(&cours).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Cours '%s' supprimé avec succès.", cours.TitreCours)
}

type sousCoursInput struct {
	IDCoursParent      int    `json:"id_cours_parent"`
	TitreSousCours     string `json:"titre_sous_cours"`
	ContenuCours       string `json:"contenu_cours"`
	CheminImgSousCours string `json:"chemin_img_sous_cours"`
}

// AddSousCours numbers the new sub-course right after the highest
// existing one of its parent; the first gets 1. Lookup and insert run
// in one transaction so two concurrent adds cannot pick the same id.
func (cc *CoursController) AddSousCours(c *fiber.Ctx) error {
	var input sousCoursInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var parent models.Course
	if err := cc.DB.Where("id_cours = ?", input.IDCoursParent).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Cours parent non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	sousCours := models.SubCourse{
		IDCoursParent:      input.IDCoursParent,
		TitreSousCours:     input.TitreSousCours,
		ContenuCours:       input.ContenuCours,
		CheminImgSousCours: input.CheminImgSousCours,
	}
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		var maxID int
		row := tx.Model(&models.SubCourse{}).
			Where("id_cours_parent = ?", input.IDCoursParent).
			Select("COALESCE(MAX(id_sous_cours), 0)").
			Row()
		if err := row.Scan(&maxID); err != nil {
			return err
		}
		sousCours.IDSousCours = maxID + 1
		return tx.Create(&sousCours).Error
	})
	if err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout du sous-cours : %v", err)
	}
	return c.JSON(sousCours)
}

func (cc *CoursController) ListSousCoursByParent(c *fiber.Ctx) error {
	idParent, err := c.ParamsInt("id_cours_parent")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de cours invalide")
	}

	var sousCours []models.SubCourse
	if err := cc.DB.Where("id_cours_parent = ?", idParent).Order("id_sous_cours").Find(&sousCours).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des sous-cours : %v", err)
	}
	if len(sousCours) == 0 {
		return utils.NotFound(c, "Aucun sous-cours trouvé pour ce parent")
	}
	return c.JSON(sousCours)
}

func (cc *CoursController) GetSousCours(c *fiber.Ctx) error {
	idSousCours := c.QueryInt("id_sous_cours", 0)
	idParent := c.QueryInt("id_cours_parent", 0)

	var sousCours models.SubCourse
	err := cc.DB.Where("id_sous_cours = ? AND id_cours_parent = ?", idSousCours, idParent).First(&sousCours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Sous-cours non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la récupération du sous-cours : %v", err)
	}
	return c.JSON(sousCours)
}

func (cc *CoursController) DeleteSousCours(c *fiber.Ctx) error {
	idSousCours, err := c.ParamsInt("id_sous_cours")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de sous-cours invalide")
	}
	idParent := c.QueryInt("id_cours_parent", 0)

	var sousCours models.SubCourse
	err = cc.DB.Where("id_sous_cours = ? AND id_cours_parent = ?", idSousCours, idParent).First(&sousCours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Sous-cours non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := cc.DB.Delete(&sousCours).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Sous-cours avec ID %d et ID parent %d supprimé.", idSousCours, idParent)
}

// AddCompletion creates the progress row for a (user, course) pair or
// returns the existing one unchanged. Completing the last course at
// 100 grants the all-courses badge.
func (cc *CoursController) AddCompletion(c *fiber.Ctx) error {
	var completion models.UserCourse
	if err := c.BodyParser(&completion); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var existing models.UserCourse
	err := cc.DB.Where("pseudo_utilisateur = ? AND id_cours = ?", completion.PseudoUtilisateur, completion.IDCours).First(&existing).Error
	if err == nil {
		return c.JSON(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	if err := cc.DB.Create(&completion).Error; err != nil {
		return utils.InternalError(c, "Erreur pendant l'ajout de la completion: %v", err)
	}

	var totalCours, coursCompletes int64
	if err := cc.DB.Model(&models.Course{}).Count(&totalCours).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	err = cc.DB.Model(&models.UserCourse{}).
		Where("pseudo_utilisateur = ? AND progression = 100", completion.PseudoUtilisateur).
		Count(&coursCompletes).Error
	if err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if totalCours > 0 && coursCompletes == totalCours {
		err := services.GrantBadge(cc.DB, completion.PseudoUtilisateur, models.BadgeTousCours)
		if err != nil && !errors.Is(err, services.ErrBadgeAlreadyOwned) {
			return utils.InternalError(c, "Erreur pendant l'ajout du gain de badge: %v", err)
		}
	}
	return c.JSON(completion)
}
