package auth

// Most used passwords from public breach corpora, lowercased. Kept
// short on purpose: the strength rules already reject the bulk of weak
// passwords, this list catches the ones that slip through.
var commonPasswords = map[string]struct{}{
	"123456":       {},
	"123456789":    {},
	"12345678":     {},
	"1234567890":   {},
	"password":     {},
	"password1":    {},
	"password123":  {},
	"passw0rd":     {},
	"p@ssw0rd":     {},
	"p@ssword1":    {},
	"motdepasse":   {},
	"motdepasse1":  {},
	"azerty":       {},
	"azerty123":    {},
	"azertyuiop":   {},
	"qwerty":       {},
	"qwerty123":    {},
	"qwertyuiop":   {},
	"abc123":       {},
	"abcd1234":     {},
	"admin":        {},
	"admin123":     {},
	"letmein":      {},
	"welcome1":     {},
	"welcome123":   {},
	"iloveyou":     {},
	"sunshine1":    {},
	"dragon123":    {},
	"monkey123":    {},
	"football1":    {},
	"superman1":    {},
	"batman123":    {},
	"soleil123":    {},
	"bonjour123":   {},
	"doudou123":    {},
	"chocolat1":    {},
	"marseille13":  {},
	"paris2024":    {},
	"trustno1":     {},
	"secret123":    {},
	"changeme1":    {},
	"summer2024":   {},
	"winter2024":   {},
	"aa123456":     {},
	"a1b2c3d4":     {},
	"1q2w3e4r":     {},
	"1qaz2wsx":     {},
	"qazwsx123":    {},
	"password2024": {},
	"didactypo123": {},
}
