package models

type Course struct {
	IDCours          int    `gorm:"primaryKey;autoIncrement" json:"id_cours"`
	TitreCours       string `gorm:"not null" json:"titre_cours"`
	DescriptionCours string `json:"description_cours"`
	DifficulteCours  int    `gorm:"default:0" json:"difficulte_cours"`
}

// SubCourse numbering is per parent: (id_cours_parent, id_sous_cours)
// is the key and ids stay contiguous from 1 within a course.
type SubCourse struct {
	IDCoursParent      int    `gorm:"primaryKey;autoIncrement:false" json:"id_cours_parent"`
	IDSousCours        int    `gorm:"primaryKey;autoIncrement:false" json:"id_sous_cours"`
	TitreSousCours     string `json:"titre_sous_cours"`
	ContenuCours       string `json:"contenu_cours"`
	CheminImgSousCours string `json:"chemin_img_sous_cours"`
}

// UserCourse holds one progress row per (user, course) pair, created on
// first touch and updated afterwards.
type UserCourse struct {
	PseudoUtilisateur string `gorm:"primaryKey" json:"pseudo_utilisateur"`
	IDCours           int    `gorm:"primaryKey;autoIncrement:false" json:"id_cours"`
	Progression       int    `gorm:"default:0" json:"progression"`
}
