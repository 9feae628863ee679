package models

import "time"

type Challenge struct {
	IDDefi          int    `gorm:"primaryKey;autoIncrement" json:"id_defi"`
	TitreDefi       string `gorm:"not null" json:"titre_defi"`
	DescriptionDefi string `json:"description_defi"`
}

// ChallengeCompletion records one timed run; a user may have any number
// of rows per challenge, "best" queries take the minimum time.
type ChallengeCompletion struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	PseudoUtilisateur string    `gorm:"index;not null" json:"pseudo_utilisateur"`
	IDDefi            int       `gorm:"index;not null" json:"id_defi"`
	TempsReussite     float64   `gorm:"not null" json:"temps_reussite"`
	DateReussite      time.Time `json:"date_reussite"`
}

// WeeklyChallenge is a single-row table holding the number of the défi
// currently open. The weekly job advances it.
type WeeklyChallenge struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	NumeroDefi int  `gorm:"not null" json:"numero_defi"`
}
