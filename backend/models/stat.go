package models

// Stat is an append-only event log: one row per recorded value, queried
// back by (user, type).
type Stat struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	PseudoUtilisateur string  `gorm:"index;not null" json:"pseudo_utilisateur"`
	TypeStat          string  `gorm:"index;not null" json:"type_stat"`
	ValeurStat        float64 `json:"valeur_stat"`
	DateStat          int64   `json:"date_stat"`
}
