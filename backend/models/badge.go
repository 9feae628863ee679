package models

// Well-known badge ids referenced by the attribution logic. Matches the
// seeded catalog order.
const (
	BadgeBronze    = 1
	BadgeArgent    = 2
	BadgeOr        = 3
	BadgeTousCours = 8
)

type Badge struct {
	IDBadge          int    `gorm:"primaryKey;autoIncrement" json:"id_badge"`
	TitreBadge       string `gorm:"not null" json:"titre_badge"`
	DescriptionBadge string `json:"description_badge"`
	ImageBadge       string `json:"image_badge"`
}

// UserBadge is one grant per (user, badge); the composite key makes
// re-grants conflict instead of duplicating.
type UserBadge struct {
	PseudoUtilisateur string `gorm:"primaryKey" json:"pseudo_utilisateur"`
	IDBadge           int    `gorm:"primaryKey;autoIncrement:false" json:"id_badge"`
}
