package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type StatController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStatController(db *gorm.DB, cfg *config.Config) *StatController {
	return &StatController{DB: db, Cfg: cfg}
}

// AddStat appends one event to the log; the timestamp is always set
// server-side.
func (sc *StatController) AddStat(c *fiber.Ctx) error {
	pseudo := c.Query("pseudo_utilisateur")
	typeStat := c.Query("type_stat")
	valeur := c.QueryFloat("valeur_stat", 0)

	if typeStat == "" {
		return utils.BadRequest(c, "type_stat est requis")
	}

	var user models.User
	if err := sc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Aucun utilisateur trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	stat := models.Stat{
		PseudoUtilisateur: pseudo,
		TypeStat:          typeStat,
		ValeurStat:        valeur,
		DateStat:          time.Now().Unix(),
	}
	if err := sc.DB.Create(&stat).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout de la stat : %v", err)
	}
	return c.JSON(stat)
}

// ListStats returns the events of one user and one type, oldest first.
func (sc *StatController) ListStats(c *fiber.Ctx) error {
	pseudo := c.Query("pseudo_utilisateur")
	typeStat := c.Query("type_stat")
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 200)

	var stats []models.Stat
	err := sc.DB.Where("pseudo_utilisateur = ? AND type_stat = ?", pseudo, typeStat).
		Order("date_stat").
		Offset(skip).Limit(limit).
		Find(&stats).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des stats : %v", err)
	}
	return c.JSON(stats)
}
