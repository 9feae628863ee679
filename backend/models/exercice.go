package models

type Exercise struct {
	IDExercice          int    `gorm:"primaryKey;autoIncrement" json:"id_exercice"`
	TitreExercice       string `gorm:"not null" json:"titre_exercice"`
	DescriptionExercice string `json:"description_exercice"`
	ContenuExercice     string `json:"contenu_exercice"`
}

type UserExercise struct {
	Pseudo       string `gorm:"primaryKey" json:"pseudo"`
	IDExercice   int    `gorm:"primaryKey;autoIncrement:false" json:"id_exercice"`
	ExerciceFait bool   `gorm:"default:false" json:"exercice_fait"`
}

// GroupExercise links an exercise to a class so admins can assign work.
type GroupExercise struct {
	IDGroupe   int `gorm:"primaryKey;autoIncrement:false" json:"id_groupe"`
	IDExercice int `gorm:"primaryKey;autoIncrement:false" json:"id_exercice"`
}
