package models

// User is keyed by pseudo: the handle is the identity across the whole
// API, so a surrogate id buys nothing here.
type User struct {
	Pseudo      string  `gorm:"primaryKey" json:"pseudo"`
	MotDePasse  string  `gorm:"not null" json:"-"`
	Nom         string  `json:"nom"`
	Prenom      string  `json:"prenom"`
	Courriel    string  `json:"courriel"`
	EstAdmin    bool    `gorm:"default:false" json:"est_admin"`
	NumCours    int     `gorm:"default:0" json:"numCours"`
	TempsTotal  float64 `gorm:"default:0" json:"tempsTotal"`
	CptDefi     int     `gorm:"default:0" json:"cptDefi"`
	PdpActuelle int     `gorm:"default:1" json:"pdpActuelle"`

	Completions []ChallengeCompletion `gorm:"foreignKey:PseudoUtilisateur;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
	Badges      []UserBadge           `gorm:"foreignKey:PseudoUtilisateur;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
	Memberships []GroupMember         `gorm:"foreignKey:PseudoUtilisateur;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
	Courses     []UserCourse          `gorm:"foreignKey:PseudoUtilisateur;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
	Exercises   []UserExercise        `gorm:"foreignKey:Pseudo;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
	Stats       []Stat                `gorm:"foreignKey:PseudoUtilisateur;references:Pseudo;constraint:OnDelete:CASCADE" json:"-"`
}

// UserSummary is the public projection returned on list and lookup
// routes: no email, no admin flag.
type UserSummary struct {
	Pseudo  string `json:"pseudo"`
	Nom     string `json:"nom"`
	Prenom  string `json:"prenom"`
	CptDefi int    `json:"cptDefi"`
}

// UserAccount carries the fields shown on the account page.
type UserAccount struct {
	Pseudo   string `json:"pseudo"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Courriel string `json:"courriel"`
}

type ProfilePicture struct {
	IDPhoto int    `gorm:"primaryKey" json:"id_photo"`
	Chemin  string `json:"chemin"`
}
