package controllers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/models"
)

// createGroupe creates a class with pseudoAdmin as first admin and
// returns its id.
func createGroupe(t *testing.T, app *fiber.App, pseudoAdmin, nom string) int {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/groupe/?pseudo_admin="+pseudoAdmin, fiber.Map{
		"nom_groupe": nom,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var groupe models.Group
	decodeBody(t, resp, &groupe)
	require.NotZero(t, groupe.IDGroupe)
	return groupe.IDGroupe
}

func membership(t *testing.T, db *gorm.DB, pseudo string, idGroupe int) (models.GroupMember, bool) {
	t.Helper()
	var membre models.GroupMember
	err := db.Where("pseudo_utilisateur = ? AND id_groupe = ?", pseudo, idGroupe).First(&membre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return membre, false
	}
	require.NoError(t, err)
	return membre, true
}

func TestCreateGroupeEnrollsFirstAdmin(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)

	idGroupe := createGroupe(t, app, "alice", "Classe de CM2")

	membre, ok := membership(t, db, "alice", idGroupe)
	require.True(t, ok)
	assert.True(t, membre.EstAdmin)

	resp := do(t, app, http.MethodPost, "/groupe/?pseudo_admin=inconnu", fiber.Map{
		"nom_groupe": "Sans admin",
	}, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddMemberPermissions(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)
	createUser(t, db, "bob", "Cl@vier2024", false)
	createUser(t, db, "carol", "Cl@vier2024", false)
	idGroupe := createGroupe(t, app, "alice", "Classe")

	tokenBob := login(t, app, "bob", "Cl@vier2024")
	tokenCarol := login(t, app, "carol", "Cl@vier2024")
	tokenAlice := login(t, app, "alice", "Cl@vier2024")

	// Un membre peut se joindre lui-même.
	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenBob)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Mais pas ajouter quelqu'un d'autre sans être admin de la classe.
	resp = do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenCarol)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// L'admin de la classe le peut.
	resp = do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=carol", idGroupe), nil, tokenAlice)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Ré-ajouter un membre renvoie la relation existante inchangée.
	resp = do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob&est_admin=true", idGroupe), nil, tokenAlice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var membre models.GroupMember
	decodeBody(t, resp, &membre)
	assert.False(t, membre.EstAdmin)
}

func TestSetAdmin(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)
	createUser(t, db, "bob", "Cl@vier2024", false)
	idGroupe := createGroupe(t, app, "alice", "Classe")

	tokenAlice := login(t, app, "alice", "Cl@vier2024")
	tokenBob := login(t, app, "bob", "Cl@vier2024")

	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenBob)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Pas sur soi-même.
	resp = do(t, app, http.MethodPatch,
		fmt.Sprintf("/admin_classe/?id_groupe=%d&pseudo_utilisateur=alice&est_admin=false", idGroupe), nil, tokenAlice)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Un simple membre ne promeut personne.
	resp = do(t, app, http.MethodPatch,
		fmt.Sprintf("/admin_classe/?id_groupe=%d&pseudo_utilisateur=alice&est_admin=false", idGroupe), nil, tokenBob)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodPatch,
		fmt.Sprintf("/admin_classe/?id_groupe=%d&pseudo_utilisateur=bob&est_admin=true", idGroupe), nil, tokenAlice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	membre, ok := membership(t, db, "bob", idGroupe)
	require.True(t, ok)
	assert.True(t, membre.EstAdmin)

	resp = do(t, app, http.MethodGet,
		fmt.Sprintf("/membre_est_admin/%d", idGroupe), nil, tokenBob)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var isAdmin bool
	decodeBody(t, resp, &isAdmin)
	assert.True(t, isAdmin)
}

func TestRemoveMemberKeepsGroupWhileAdminRemains(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)
	createUser(t, db, "bob", "Cl@vier2024", false)
	idGroupe := createGroupe(t, app, "alice", "Classe")

	tokenAlice := login(t, app, "alice", "Cl@vier2024")
	tokenBob := login(t, app, "bob", "Cl@vier2024")

	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenBob)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Bob ne peut pas retirer alice.
	resp = do(t, app, http.MethodDelete,
		fmt.Sprintf("/membres_classe?id_groupe=%d&pseudo_utilisateur=alice", idGroupe), nil, tokenBob)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Alice retire bob : la classe survit.
	resp = do(t, app, http.MethodDelete,
		fmt.Sprintf("/membres_classe?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenAlice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var groupe models.Group
	assert.NoError(t, db.Where("id_groupe = ?", idGroupe).First(&groupe).Error)
	_, ok := membership(t, db, "bob", idGroupe)
	assert.False(t, ok)
}

func TestRemoveLastAdminDeletesGroup(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)
	createUser(t, db, "bob", "Cl@vier2024", false)
	idGroupe := createGroupe(t, app, "alice", "Classe")

	tokenAlice := login(t, app, "alice", "Cl@vier2024")
	tokenBob := login(t, app, "bob", "Cl@vier2024")

	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/membre_classe/?id_groupe=%d&pseudo_utilisateur=bob", idGroupe), nil, tokenBob)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Le dernier admin part : la classe et ses membres disparaissent.
	resp = do(t, app, http.MethodDelete,
		fmt.Sprintf("/membres_classe?id_groupe=%d&pseudo_utilisateur=alice", idGroupe), nil, tokenAlice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var groupes int64
	require.NoError(t, db.Model(&models.Group{}).Where("id_groupe = ?", idGroupe).Count(&groupes).Error)
	assert.EqualValues(t, 0, groupes)

	var membres int64
	require.NoError(t, db.Model(&models.GroupMember{}).Where("id_groupe = ?", idGroupe).Count(&membres).Error)
	assert.EqualValues(t, 0, membres)
}

func TestListMembersRestrictedToMembers(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "alice", "Cl@vier2024", false)
	createUser(t, db, "dora", "Cl@vier2024", false)
	idGroupe := createGroupe(t, app, "alice", "Classe")

	resp := do(t, app, http.MethodGet,
		fmt.Sprintf("/admins_par_groupe/%d", idGroupe), nil, login(t, app, "dora", "Cl@vier2024"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodGet,
		fmt.Sprintf("/admins_par_groupe/%d", idGroupe), nil, login(t, app, "alice", "Cl@vier2024"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var admins []models.UserSummary
	decodeBody(t, resp, &admins)
	require.Len(t, admins, 1)
	assert.Equal(t, "alice", admins[0].Pseudo)
}
