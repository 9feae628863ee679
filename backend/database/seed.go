package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/models"
)

// Seed loads the static catalogs (courses, exercises, badges, défis,
// profile pictures) exactly once. Each catalog is gated on its own
// table being empty so a partially seeded database recovers on the
// next start.
func Seed(db *gorm.DB, logger *log.Logger) error {
	if err := seedTable(db, logger, "cours", &models.Course{}, seedCourses); err != nil {
		return err
	}
	if err := seedTable(db, logger, "sous-cours", &models.SubCourse{}, seedSubCourses); err != nil {
		return err
	}
	if err := seedTable(db, logger, "exercices", &models.Exercise{}, seedExercises); err != nil {
		return err
	}
	if err := seedTable(db, logger, "badges", &models.Badge{}, seedBadges); err != nil {
		return err
	}
	if err := seedTable(db, logger, "defis", &models.Challenge{}, seedChallenges); err != nil {
		return err
	}
	if err := seedTable(db, logger, "photos de profil", &models.ProfilePicture{}, seedProfilePictures); err != nil {
		return err
	}
	return nil
}

func seedTable(db *gorm.DB, logger *log.Logger, name string, model interface{}, load func(*gorm.DB) error) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Printf("seed: %s deja initialises", name)
		return nil
	}
	if err := load(db); err != nil {
		return err
	}
	logger.Printf("seed: %s initialises", name)
	return nil
}

func seedCourses(db *gorm.DB) error {
	cours := []models.Course{
		{IDCours: 1, TitreCours: "Position des mains", DescriptionCours: "Placer ses doigts sur la rangée de repos.", DifficulteCours: 1},
		{IDCours: 2, TitreCours: "La rangée du haut", DescriptionCours: "Atteindre les touches AZERTYUIOP sans regarder.", DifficulteCours: 1},
		{IDCours: 3, TitreCours: "La rangée du bas", DescriptionCours: "W à N, avec retour systématique au repos.", DifficulteCours: 2},
		{IDCours: 4, TitreCours: "Chiffres et symboles", DescriptionCours: "La rangée des chiffres et les symboles courants.", DifficulteCours: 3},
		{IDCours: 5, TitreCours: "Majuscules et accents", DescriptionCours: "Shift, accents et ponctuation française.", DifficulteCours: 3},
	}
	return db.Create(&cours).Error
}

func seedSubCourses(db *gorm.DB) error {
	sousCours := []models.SubCourse{
		{IDCoursParent: 1, IDSousCours: 1, TitreSousCours: "La rangée de repos", ContenuCours: "qsdf jklm", CheminImgSousCours: "/img/cours/repos.png"},
		{IDCoursParent: 1, IDSousCours: 2, TitreSousCours: "Les index", ContenuCours: "fj fj gh gh", CheminImgSousCours: "/img/cours/index.png"},
		{IDCoursParent: 2, IDSousCours: 1, TitreSousCours: "E et I", ContenuCours: "de de ki ki", CheminImgSousCours: "/img/cours/ei.png"},
		{IDCoursParent: 2, IDSousCours: 2, TitreSousCours: "A et P", ContenuCours: "qa qa ;p ;p", CheminImgSousCours: "/img/cours/ap.png"},
		{IDCoursParent: 3, IDSousCours: 1, TitreSousCours: "C et N", ContenuCours: "dc dc jn jn", CheminImgSousCours: "/img/cours/cn.png"},
	}
	return db.Create(&sousCours).Error
}

func seedExercises(db *gorm.DB) error {
	exercices := []models.Exercise{
		{IDExercice: 1, TitreExercice: "Lettres simples", DescriptionExercice: "Suite de lettres de la rangée de repos.", ContenuExercice: "fjfj dkdk slsl qmqm"},
		{IDExercice: 2, TitreExercice: "Mots courts", DescriptionExercice: "Mots de trois a cinq lettres.", ContenuExercice: "las des fil jade"},
		{IDExercice: 3, TitreExercice: "Phrases", DescriptionExercice: "Phrases completes avec ponctuation.", ContenuExercice: "Le chat dort sur le clavier."},
		{IDExercice: 4, TitreExercice: "Chiffres", DescriptionExercice: "Suites de chiffres.", ContenuExercice: "123 456 789 0"},
	}
	return db.Create(&exercices).Error
}

func seedBadges(db *gorm.DB) error {
	badges := []models.Badge{
		{IDBadge: models.BadgeBronze, TitreBadge: "Bronze hebdomadaire", DescriptionBadge: "Top 10 du défi de la semaine.", ImageBadge: "/img/badges/bronze.png"},
		{IDBadge: models.BadgeArgent, TitreBadge: "Argent hebdomadaire", DescriptionBadge: "Top 5 du défi de la semaine.", ImageBadge: "/img/badges/argent.png"},
		{IDBadge: models.BadgeOr, TitreBadge: "Or hebdomadaire", DescriptionBadge: "Première place du défi de la semaine.", ImageBadge: "/img/badges/or.png"},
		{IDBadge: 4, TitreBadge: "Premier défi", DescriptionBadge: "Terminer un premier défi.", ImageBadge: "/img/badges/premier-defi.png"},
		{IDBadge: 5, TitreBadge: "Dix défis", DescriptionBadge: "Terminer dix défis.", ImageBadge: "/img/badges/dix-defis.png"},
		{IDBadge: 6, TitreBadge: "Première heure", DescriptionBadge: "Une heure de pratique cumulée.", ImageBadge: "/img/badges/heure.png"},
		{IDBadge: 7, TitreBadge: "Premier cours", DescriptionBadge: "Terminer un premier cours.", ImageBadge: "/img/badges/premier-cours.png"},
		{IDBadge: models.BadgeTousCours, TitreBadge: "Tous les cours", DescriptionBadge: "Terminer tous les cours de la plateforme.", ImageBadge: "/img/badges/tous-cours.png"},
	}
	return db.Create(&badges).Error
}

func seedChallenges(db *gorm.DB) error {
	defis := []models.Challenge{
		{IDDefi: 1, TitreDefi: "Défi de la semaine 1", DescriptionDefi: "Taper le texte le plus vite possible sans faute."},
		{IDDefi: 2, TitreDefi: "Défi de la semaine 2", DescriptionDefi: "Un paragraphe avec ponctuation."},
		{IDDefi: 3, TitreDefi: "Défi de la semaine 3", DescriptionDefi: "Chiffres et symboles chronométrés."},
		{IDDefi: 4, TitreDefi: "Défi de la semaine 4", DescriptionDefi: "Texte long, endurance."},
	}
	return db.Create(&defis).Error
}

func seedProfilePictures(db *gorm.DB) error {
	photos := []models.ProfilePicture{
		{IDPhoto: 1, Chemin: "/img/pdp/defaut.png"},
		{IDPhoto: 2, Chemin: "/img/pdp/chat.png"},
		{IDPhoto: 3, Chemin: "/img/pdp/robot.png"},
		{IDPhoto: 4, Chemin: "/img/pdp/clavier.png"},
	}
	return db.Create(&photos).Error
}
