package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type ExerciceController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewExerciceController(db *gorm.DB, cfg *config.Config) *ExerciceController {
	return &ExerciceController{DB: db, Cfg: cfg}
}

func (ec *ExerciceController) CreateExercice(c *fiber.Ctx) error {
	var exercice models.Exercise
	if err := c.BodyParser(&exercice); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := ec.DB.Create(&exercice).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la création de l'exercice: %v", err)
	}
	return c.JSON(exercice)
}

func (ec *ExerciceController) ListExercices(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var exercices []models.Exercise
	if err := ec.DB.Offset(skip).Limit(limit).Find(&exercices).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des exercices: %v", err)
	}
	if len(exercices) == 0 {
		return utils.NotFound(c, "Aucun exercice trouvé")
	}
	return c.JSON(exercices)
}

func (ec *ExerciceController) GetExercice(c *fiber.Ctx) error {
	idExercice, err := c.ParamsInt("id_exercice")
	if err != nil {
		return utils.BadRequest(c, "Identifiant d'exercice invalide")
	}

	var exercice models.Exercise
	if err := ec.DB.Where("id_exercice = ?", idExercice).First(&exercice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercice non trouvé")
		}
		return utils.InternalError(c, "Erreur lors de la récupération de l'exercice: %v", err)
	}
	return c.JSON(exercice)
}

func (ec *ExerciceController) DeleteExercice(c *fiber.Ctx) error {
	idExercice, err := c.ParamsInt("id_exercice")
	if err != nil {
		return utils.BadRequest(c, "Identifiant d'exercice invalide")
	}

	var exercice models.Exercise
	if err := ec.DB.Where("id_exercice = ?", idExercice).First(&exercice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercice non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := ec.DB.Delete(&exercice).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la suppression de l'exercice: %v", err)
	}
	return utils.Message(c, "Exercice avec l'ID '%d' supprimé avec succès.", idExercice)
}

// AddDone marks an exercise done for a user; already-done answers 204.
func (ec *ExerciceController) AddDone(c *fiber.Ctx) error {
	idExercice := c.QueryInt("id_exercice", 0)
	pseudo := c.Query("pseudo")

	var user models.User
	if err := ec.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	var exercice models.Exercise
	if err := ec.DB.Where("id_exercice = ?", idExercice).First(&exercice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Exercice non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	var existing models.UserExercise
	err := ec.DB.Where("pseudo = ? AND id_exercice = ?", pseudo, idExercice).First(&existing).Error
	if err == nil {
		return utils.NoContent(c)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	fait := models.UserExercise{
		Pseudo:       pseudo,
		IDExercice:   idExercice,
		ExerciceFait: true,
	}
	if err := ec.DB.Create(&fait).Error; err != nil {
		return utils.InternalError(c, "Erreur : %v", err)
	}
	return c.JSON(fait)
}

func (ec *ExerciceController) ListDone(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo")
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var user models.User
	if err := ec.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	var faits []models.UserExercise
	err := ec.DB.Where("pseudo = ? AND exercice_fait = ?", pseudo, true).
		Offset(skip).Limit(limit).
		Find(&faits).Error
	if err != nil {
		return utils.InternalError(c, "Erreur : %v", err)
	}
	if len(faits) == 0 {
		return utils.NoContent(c)
	}
	return c.JSON(faits)
}

func (ec *ExerciceController) DeleteDone(c *fiber.Ctx) error {
	idExercice := c.QueryInt("id_exercice", 0)
	pseudo := c.Query("pseudo")

	var relation models.UserExercise
	err := ec.DB.Where("pseudo = ? AND id_exercice = ?", pseudo, idExercice).First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := ec.DB.Delete(&relation).Error; err != nil {
		return utils.InternalError(c, "Erreur : %v", err)
	}
	return utils.Message(c, "L'exercice avec ID %d pour l'utilisateur '%s' a été supprimé avec succès.", idExercice, pseudo)
}

// AddGroupExercise links an exercise to a class.
func (ec *ExerciceController) AddGroupExercise(c *fiber.Ctx) error {
	var liaison models.GroupExercise
	if err := c.BodyParser(&liaison); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := ec.DB.Create(&liaison).Error; err != nil {
		return utils.InternalError(c, "Erreur pendant l'ajout d'un exercice de groupe: %v", err)
	}
	return c.JSON(liaison)
}

func (ec *ExerciceController) ListGroupExercises(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var liaisons []models.GroupExercise
	if err := ec.DB.Offset(skip).Limit(limit).Find(&liaisons).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des exercices de groupe: %v", err)
	}
	return c.JSON(liaisons)
}

// ListExercisesOfGroup returns the full exercises assigned to a class.
func (ec *ExerciceController) ListExercisesOfGroup(c *fiber.Ctx) error {
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}

	var exercices []models.Exercise
	err = ec.DB.Model(&models.Exercise{}).
		Joins("JOIN group_exercises ON group_exercises.id_exercice = exercises.id_exercice").
		Where("group_exercises.id_groupe = ?", idGroupe).
		Find(&exercices).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des exercices du groupe: %v", err)
	}
	if len(exercices) == 0 {
		return utils.NoContent(c)
	}
	return c.JSON(exercices)
}

// DeleteGroupExercise removes the link only; the exercise itself stays.
func (ec *ExerciceController) DeleteGroupExercise(c *fiber.Ctx) error {
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}
	idExercice, err := c.ParamsInt("id_exercice")
	if err != nil {
		return utils.BadRequest(c, "Identifiant d'exercice invalide")
	}

	var liaison models.GroupExercise
	err = ec.DB.Where("id_groupe = ? AND id_exercice = ?", idGroupe, idExercice).First(&liaison).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Liaison Exercice-Groupe non trouvée")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := ec.DB.Delete(&liaison).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Liaison Exercice-Groupe %d-%d supprimée avec succès.", idExercice, idGroupe)
}
