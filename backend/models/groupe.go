package models

type Group struct {
	IDGroupe          int    `gorm:"primaryKey;autoIncrement" json:"id_groupe"`
	NomGroupe         string `gorm:"not null" json:"nom_groupe"`
	DescriptionGroupe string `json:"description_groupe"`

	Members []GroupMember `gorm:"foreignKey:IDGroupe;references:IDGroupe;constraint:OnDelete:CASCADE" json:"-"`
}

// GroupMember links a user to a class; est_admin drives the per-group
// authorization checks.
type GroupMember struct {
	PseudoUtilisateur string `gorm:"primaryKey" json:"pseudo_utilisateur"`
	IDGroupe          int    `gorm:"primaryKey;autoIncrement:false" json:"id_groupe"`
	EstAdmin          bool   `gorm:"default:false" json:"est_admin"`
}
