package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/middleware"
	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

type GroupeController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGroupeController(db *gorm.DB, cfg *config.Config) *GroupeController {
	return &GroupeController{DB: db, Cfg: cfg}
}

// isGroupAdmin reports whether pseudo is an admin member of the group.
func (gc *GroupeController) isGroupAdmin(pseudo string, idGroupe int) (bool, error) {
	var membre models.GroupMember
	err := gc.DB.Where("pseudo_utilisateur = ? AND id_groupe = ? AND est_admin = ?", pseudo, idGroupe, true).First(&membre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (gc *GroupeController) adminCount(idGroupe int) (int64, error) {
	var count int64
	err := gc.DB.Model(&models.GroupMember{}).
		Where("id_groupe = ? AND est_admin = ?", idGroupe, true).
		Count(&count).Error
	return count, err
}

// CreateGroupe creates the class and enrolls the given user as its
// first admin, in one transaction: a group must never exist without an
// admin.
func (gc *GroupeController) CreateGroupe(c *fiber.Ctx) error {
	pseudoAdmin := c.Query("pseudo_admin")

	var groupe models.Group
	if err := c.BodyParser(&groupe); err != nil {
		return utils.BadRequest(c, "Données de groupe invalides")
	}

	var admin models.User
	if err := gc.DB.Where("pseudo = ?", pseudoAdmin).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur avec le pseudo '%s' non trouvé", pseudoAdmin)
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	err := gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&groupe).Error; err != nil {
			return err
		}
		membre := models.GroupMember{
			PseudoUtilisateur: pseudoAdmin,
			IDGroupe:          groupe.IDGroupe,
			EstAdmin:          true,
		}
		return tx.Create(&membre).Error
	})
	if err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout du groupe : %v", err)
	}
	return c.JSON(groupe)
}

func (gc *GroupeController) ListGroupes(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var groupes []models.Group
	if err := gc.DB.Offset(skip).Limit(limit).Find(&groupes).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des groupes : %v", err)
	}
	return c.JSON(groupes)
}

func (gc *GroupeController) GetGroupe(c *fiber.Ctx) error {
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}

	var groupe models.Group
	if err := gc.DB.Where("id_groupe = ?", idGroupe).First(&groupe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur lors de la récupération du groupe : %v", err)
	}
	return c.JSON(groupe)
}

func (gc *GroupeController) DeleteGroupe(c *fiber.Ctx) error {
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}

	var groupe models.Group
	if err := gc.DB.Where("id_groupe = ?", idGroupe).First(&groupe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Groupe non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if err := gc.DB.Select("Members").Delete(&groupe).Error; err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	return utils.Message(c, "Groupe '%s' supprimé avec succès.", groupe.NomGroupe)
}

// AddMember enrolls a user into a class. Allowed for an admin of the
// class, or for a user adding themselves. Re-adding an existing member
// returns the current membership unchanged.
func (gc *GroupeController) AddMember(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	idGroupe := c.QueryInt("id_groupe", 0)
	pseudo := c.Query("pseudo_utilisateur")
	estAdmin := c.QueryBool("est_admin", false)

	isAdmin, err := gc.isGroupAdmin(current.Pseudo, idGroupe)
	if err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if !isAdmin && current.Pseudo != pseudo {
		return utils.Forbidden(c, "Vous n'avez pas la permission d'ajouter cet utilisateur à cette classe")
	}

	var user models.User
	if err := gc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	var groupe models.Group
	if err := gc.DB.Where("id_groupe = ?", idGroupe).First(&groupe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Groupe non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	var existing models.GroupMember
	err = gc.DB.Where("pseudo_utilisateur = ? AND id_groupe = ?", pseudo, idGroupe).First(&existing).Error
	if err == nil {
		return c.JSON(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	membre := models.GroupMember{
		PseudoUtilisateur: pseudo,
		IDGroupe:          idGroupe,
		EstAdmin:          estAdmin,
	}
	if err := gc.DB.Create(&membre).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de l'ajout du membre : %v", err)
	}
	return c.JSON(membre)
}

// listMembersByRole returns the summaries of members of the class
// filtered on the admin flag; only visible to members of the class.
func (gc *GroupeController) listMembersByRole(c *fiber.Ctx, admins bool) error {
	current := middleware.CurrentUser(c)
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	var membre models.GroupMember
	err = gc.DB.Where("pseudo_utilisateur = ? AND id_groupe = ?", current.Pseudo, idGroupe).First(&membre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden(c, "Accès restreint : vous ne faites pas partie de cette classe")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	var users []models.User
	err = gc.DB.Model(&models.User{}).
		Joins("JOIN group_members ON group_members.pseudo_utilisateur = users.pseudo").
		Where("group_members.id_groupe = ? AND group_members.est_admin = ?", idGroupe, admins).
		Offset(skip).Limit(limit).
		Find(&users).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des relations groupe-utilisateur : %v", err)
	}
	if len(users) == 0 {
		if admins {
			return utils.NotFound(c, "Aucun administrateur dans la classe : %d", idGroupe)
		}
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

func (gc *GroupeController) ListAdmins(c *fiber.Ctx) error {
	return gc.listMembersByRole(c, true)
}

func (gc *GroupeController) ListMembers(c *fiber.Ctx) error {
	return gc.listMembersByRole(c, false)
}

// IsAdmin tells the caller whether they administer the class.
func (gc *GroupeController) IsAdmin(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	idGroupe, err := c.ParamsInt("id_groupe")
	if err != nil {
		return utils.BadRequest(c, "Identifiant de groupe invalide")
	}

	isAdmin, err := gc.isGroupAdmin(current.Pseudo, idGroupe)
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la vérification du statut administrateur : %v", err)
	}
	return c.JSON(isAdmin)
}

// SetAdmin promotes or demotes a member. Only admins of the class, and
// never on themselves: demoting yourself could leave the class without
// any admin silently.
func (gc *GroupeController) SetAdmin(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	idGroupe := c.QueryInt("id_groupe", 0)
	pseudo := c.Query("pseudo_utilisateur")
	estAdmin := c.QueryBool("est_admin", false)

	if pseudo == current.Pseudo {
		return utils.Forbidden(c, "Vous ne pouvez pas changer votre propre statut administrateur")
	}

	isAdmin, err := gc.isGroupAdmin(current.Pseudo, idGroupe)
	if err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if !isAdmin {
		return utils.Forbidden(c, "Accès refusé : Vous devez être administrateur de cette classe")
	}

	var user models.User
	if err := gc.DB.Where("pseudo = ?", pseudo).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Utilisateur non trouvé")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	var membre models.GroupMember
	err = gc.DB.Where("pseudo_utilisateur = ? AND id_groupe = ?", pseudo, idGroupe).First(&membre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "L'utilisateur n'est pas membre de cette classe")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	if membre.EstAdmin == estAdmin {
		if estAdmin {
			return utils.Message(c, "L'utilisateur '%s' est déjà administrateur de la classe", pseudo)
		}
		return utils.Message(c, "L'utilisateur '%s' est déjà un membre normal de la classe", pseudo)
	}

	if err := gc.DB.Model(&membre).Update("est_admin", estAdmin).Error; err != nil {
		return utils.InternalError(c, "Erreur lors de la mise à jour du statut administrateur : %v", err)
	}
	if estAdmin {
		return utils.Message(c, "Utilisateur '%s' promu administrateur de la classe", pseudo)
	}
	return utils.Message(c, "Statut administrateur mis à jour pour l'utilisateur '%s'", pseudo)
}

// GetMembership returns the first membership of a user.
func (gc *GroupeController) GetMembership(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo_utilisateur")

	var membre models.GroupMember
	err := gc.DB.Where("pseudo_utilisateur = ?", pseudo).First(&membre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NoContent(c)
		}
		return utils.InternalError(c, "Erreur lors de la récupération des groupes de l'utilisateur : %v", err)
	}
	return c.JSON(membre)
}

// ListUserGroups returns every class a user belongs to.
func (gc *GroupeController) ListUserGroups(c *fiber.Ctx) error {
	pseudo := c.Params("pseudo_utilisateur")

	var groupes []models.Group
	err := gc.DB.Model(&models.Group{}).
		Joins("JOIN group_members ON group_members.id_groupe = groups.id_groupe").
		Where("group_members.pseudo_utilisateur = ?", pseudo).
		Find(&groupes).Error
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la récupération des classes : %v", err)
	}
	return c.JSON(groupes)
}

// RemoveMember deletes a membership; allowed for a class admin or for
// the member leaving on their own. When the last admin goes, the whole
// class goes with them.
func (gc *GroupeController) RemoveMember(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	idGroupe := c.QueryInt("id_groupe", 0)
	pseudo := c.Query("pseudo_utilisateur")

	isAdmin, err := gc.isGroupAdmin(current.Pseudo, idGroupe)
	if err != nil {
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}
	if !isAdmin && pseudo != current.Pseudo {
		return utils.Forbidden(c, "Accès restreint: Vous n'avez pas l'autorisation de modifier les informations de cet utilisateur pour cette classe")
	}

	var relation models.GroupMember
	err = gc.DB.Where("pseudo_utilisateur = ? AND id_groupe = ?", pseudo, idGroupe).First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "L'utilisateur n'est pas membre de cette classe")
		}
		return utils.InternalError(c, "Erreur de base de données: %v", err)
	}

	err = gc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&relation).Error; err != nil {
			return err
		}
		var admins int64
		err := tx.Model(&models.GroupMember{}).
			Where("id_groupe = ? AND est_admin = ?", idGroupe, true).
			Count(&admins).Error
		if err != nil {
			return err
		}
		if admins == 0 {
			err := tx.Where("id_groupe = ?", idGroupe).Delete(&models.GroupMember{}).Error
			if err != nil {
				return err
			}
			return tx.Where("id_groupe = ?", idGroupe).Delete(&models.Group{}).Error
		}
		return nil
	})
	if err != nil {
		return utils.InternalError(c, "Erreur lors de la suppression de la relation : %v", err)
	}
	return c.JSON(fiber.Map{"detail": "Relation supprimée avec succès."})
}
