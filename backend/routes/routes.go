package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/config"
	"github.com/yipfram/DidactypoBack/backend/controllers"
	"github.com/yipfram/DidactypoBack/backend/middleware"
	"github.com/yipfram/DidactypoBack/backend/services"
)

// SetupRoutes registers the whole API surface. Paths keep the names of
// the previous backend so existing clients work unchanged.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, weekly *services.WeeklyChallengeService) {
	authRequired := middleware.AuthMiddleware(db, cfg)
	adminRequired := middleware.AdminMiddleware()

	// Auth
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/token", authController.Token)
	app.Post("/utilisateurs/", authController.Register)
	app.Patch("/modification_mdp", authController.ChangePassword)

	// Utilisateurs
	userController := controllers.NewUserController(db, cfg)
	app.Get("/utilisateurs/", authRequired, adminRequired, userController.ListUsers)
	app.Delete("/utilisateurs/:pseudo", authRequired, adminRequired, userController.DeleteUser)
	app.Put("/utilisateurs/:pseudo/cptDefi", userController.UpdateCptDefi)
	app.Put("/utilisateurs/:pseudo/pdp", userController.UpdatePdp)
	app.Get("/utilisateur/moi", authRequired, userController.Me)
	app.Get("/utilisateur/:pseudo", userController.GetUser)
	app.Get("/utilisateur_full/:pseudo", authRequired, adminRequired, userController.GetUserFull)
	app.Get("/utilisateurCompte/:pseudo", userController.GetAccount)
	app.Get("/utilisateurPdp/:pseudo", userController.GetUserPdp)

	// Défis
	defiController := controllers.NewDefiController(db, cfg, weekly)
	app.Post("/defis/", defiController.CreateDefi)
	app.Get("/defis/", defiController.ListDefis)
	app.Get("/defis/:id_defi", defiController.GetDefi)
	app.Delete("/defis/:id_defi", defiController.DeleteDefi)
	app.Post("/reussites_defi/", authRequired, defiController.AddCompletion)
	app.Get("/reussites_defi", defiController.ListCompletions)
	app.Get("/reussites_defi/utilisateurs/:pseudo_utilisateur", defiController.ListUserCompletions)
	app.Get("/reussites_defi/defi/:id_defi", defiController.ListDefiRanking)
	app.Delete("/reussites_defi/", defiController.DeleteCompletion)
	app.Get("/defi_semaine", defiController.GetWeeklyChallenge)

	// Cours
	coursController := controllers.NewCoursController(db, cfg)
	app.Post("/cours/", coursController.CreateCours)
	app.Get("/cours/", coursController.ListCours)
	app.Get("/cours/:id_cours", coursController.GetCours)
	app.Delete("/cours/:id_cours", coursController.DeleteCours)
	app.Post("/sous_cours/", coursController.AddSousCours)
	app.Get("/sous_cours", coursController.GetSousCours)
	app.Get("/sous_cours/:id_cours_parent", coursController.ListSousCoursByParent)
	app.Delete("/sous_cours/:id_sous_cours", coursController.DeleteSousCours)
	app.Post("/completion_cours", coursController.AddCompletion)

	// Groupes / classes
	groupeController := controllers.NewGroupeController(db, cfg)
	app.Post("/groupe/", groupeController.CreateGroupe)
	app.Get("/groupe/", groupeController.ListGroupes)
	app.Get("/groupe/:id_groupe", groupeController.GetGroupe)
	app.Delete("/groupe/:id_groupe", groupeController.DeleteGroupe)
	app.Post("/membre_classe/", authRequired, groupeController.AddMember)
	app.Get("/membre_classe/:pseudo_utilisateur", groupeController.GetMembership)
	app.Get("/membre_classes/:pseudo_utilisateur", groupeController.ListUserGroups)
	app.Get("/admins_par_groupe/:id_groupe", authRequired, groupeController.ListAdmins)
	app.Get("/membres_classe_par_groupe/:id_groupe", authRequired, groupeController.ListMembers)
	app.Get("/membre_est_admin/:id_groupe", authRequired, groupeController.IsAdmin)
	app.Patch("/admin_classe/", authRequired, groupeController.SetAdmin)
	app.Delete("/membres_classe", authRequired, groupeController.RemoveMember)

	// Exercices
	exerciceController := controllers.NewExerciceController(db, cfg)
	app.Post("/exercices/", exerciceController.CreateExercice)
	app.Get("/exercices/", exerciceController.ListExercices)
	app.Get("/exercices/:id_exercice", exerciceController.GetExercice)
	app.Delete("/exercices/:id_exercice", exerciceController.DeleteExercice)
	app.Post("/exercices_realises/", exerciceController.AddDone)
	app.Get("/exercices_realises/:pseudo", exerciceController.ListDone)
	app.Delete("/exercices_realises/", exerciceController.DeleteDone)
	app.Post("/exercice_groupe/", exerciceController.AddGroupExercise)
	app.Get("/exercice_groupe/", exerciceController.ListGroupExercises)
	app.Get("/exercice_groupe/:id_groupe", exerciceController.ListExercisesOfGroup)
	app.Delete("/exercice_groupe/:id_groupe/:id_exercice", exerciceController.DeleteGroupExercise)

	// Badges
	badgeController := controllers.NewBadgeController(db, cfg)
	app.Post("/badges/", badgeController.CreateBadge)
	app.Post("/gain_badge", badgeController.GrantBadge)
	app.Delete("/gain_badge/:pseudo_utilisateur", badgeController.DeleteUserBadges)
	app.Get("/badge/:pseudo", badgeController.ListUserBadges)
	app.Get("/badge_manquant/:id_badge", badgeController.GetBadge)
	app.Get("/badge_membres/:id_badge", badgeController.ListBadgeHolders)

	// Stats
	statController := controllers.NewStatController(db, cfg)
	app.Post("/stat/", statController.AddStat)
	app.Get("/stat/", statController.ListStats)

	// Photos de profil
	app.Get("/photo_profil", userController.ListProfilePictures)
	app.Get("/photo_profil/:id_photo", userController.GetProfilePicture)
}
