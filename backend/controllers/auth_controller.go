package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/auth"
	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type registerInput struct {
	Pseudo     string  `json:"pseudo"`
	MotDePasse string  `json:"mot_de_passe"`
	Nom        string  `json:"nom"`
	Prenom     string  `json:"prenom"`
	Courriel   string  `json:"courriel"`
	EstAdmin   bool    `json:"est_admin"`
	NumCours   int     `json:"numCours"`
	TempsTotal float64 `json:"tempsTotal"`
}

type passwordChangeInput struct {
	Pseudo    string `json:"pseudo"`
	AncienMdp string `json:"ancien_mdp"`
	NewMdp    string `json:"new_mdp"`
}

// Register godoc
// @Summary Create a user account
// @Description Validates the password policy, hashes the password and stores the user
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Router /utilisateurs/ [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Pseudo == "" {
		return utils.BadRequest(c, "Le pseudo ne peut pas être vide")
	}

	if err := auth.ValidatePassword(input.MotDePasse); err != nil {
		return utils.BadRequest(c, "%s", err.Error())
	}

	hashed, err := auth.HashPassword(input.MotDePasse)
	if err != nil {
		return utils.InternalError(c, "Erreur interne: %v", err)
	}

	user := models.User{
		Pseudo:      input.Pseudo,
		MotDePasse:  hashed,
		Nom:         input.Nom,
		Prenom:      input.Prenom,
		Courriel:    input.Courriel,
		EstAdmin:    input.EstAdmin,
		NumCours:    input.NumCours,
		TempsTotal:  input.TempsTotal,
		CptDefi:     0,
		PdpActuelle: 1,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return c.JSON(user)
}

// Token godoc
// @Summary Issue an access token
// @Description Form-encoded username/password exchange for a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /token [post]
func (ac *AuthController) Token(c *fiber.Ctx) error {
	pseudo := c.FormValue("username")
	password := c.FormValue("password")

	user := ac.authenticate(pseudo, password)
	if user == nil {
		return utils.Unauthorized(c, "Mot de passe ou pseudo incorrecte")
	}

	ttl := time.Duration(ac.Cfg.TokenExpireMinutes) * time.Minute
	token, err := auth.GenerateToken(user.Pseudo, ac.Cfg.JWTSecret, ttl)
	if err != nil {
		return utils.InternalError(c, "Erreur interne: %v", err)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// ChangePassword rejects a wrong old password, an empty or weak new
// password, and a new password equal to the old one.
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var input passwordChangeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("pseudo = ?", input.Pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	if !auth.CheckPassword(input.AncienMdp, user.MotDePasse) {
		return utils.Unauthorized(c, "L'ancien mot de passe est incorrect")
	}
	if strings.TrimSpace(input.NewMdp) == "" {
		return utils.BadRequest(c, "Le nouveau mot de passe ne peut pas être vide")
	}
	if err := auth.ValidatePassword(input.NewMdp); err != nil {
		return utils.BadRequest(c, "%s", err.Error())
	}
	if auth.CheckPassword(input.NewMdp, user.MotDePasse) {
		return utils.BadRequest(c, "Le nouveau mot de passe doit être différent de l'ancien.")
	}

	hashed, err := auth.HashPassword(input.NewMdp)
	if err != nil {
		return utils.InternalError(c, "Erreur interne, veuillez réessayer plus tard.")
	}
	if err := ac.DB.Model(&user).Update("mot_de_passe", hashed).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Mot de passe de '%s' modifié avec succès.", input.Pseudo)
}

// authenticate resolves pseudo+password to a user. Unknown pseudo and
// wrong password are indistinguishable to the caller.
func (ac *AuthController) authenticate(pseudo, password string) *models.User {
	var user models.User
	if err := ac.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		return nil
	}
	if !auth.CheckPassword(password, user.MotDePasse) {
		return nil
	}
	return &user
}
