package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yipfram/DidactypoBack/backend/models"
)

func TestGetUserSummary(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)

	resp := do(t, app, http.MethodGet, "/utilisateur/dora", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary map[string]interface{}
	decodeBody(t, resp, &summary)
	assert.Equal(t, "dora", summary["pseudo"])
	assert.NotContains(t, summary, "courriel")
	assert.NotContains(t, summary, "est_admin")

	resp = do(t, app, http.MethodGet, "/utilisateur/inconnu", nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestGetAccount(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)

	resp := do(t, app, http.MethodGet, "/utilisateurCompte/dora", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var compte models.UserAccount
	decodeBody(t, resp, &compte)
	assert.Equal(t, "dora", compte.Pseudo)

	resp = do(t, app, http.MethodGet, "/utilisateurCompte/inconnu", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateCptDefiAndPdp(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)

	resp := do(t, app, http.MethodPut, "/utilisateurs/dora/cptDefi", fiber.Map{
		"cptDefi": 4,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPut, "/utilisateurs/dora/pdp", fiber.Map{
		"pdpActuelle": 3,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("pseudo = ?", "dora").First(&user).Error)
	assert.Equal(t, 4, user.CptDefi)
	assert.Equal(t, 3, user.PdpActuelle)

	resp = do(t, app, http.MethodPut, "/utilisateurs/inconnu/cptDefi", fiber.Map{
		"cptDefi": 4,
	}, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteUserCascades(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "prof", "Cl@vier2024", true)
	createUser(t, db, "dora", "Cl@vier2024", false)

	idBadge := createBadge(t, app, "Premier pas")
	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/gain_badge?pseudo_utilisateur=dora&id_badge=%d", idBadge), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodPost,
		"/stat/?pseudo_utilisateur=dora&type_stat=precision&valeur_stat=90", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	tokenProf := login(t, app, "prof", "Cl@vier2024")
	resp = do(t, app, http.MethodDelete, "/utilisateurs/dora", nil, tokenProf)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("pseudo = ?", "dora").Count(&users).Error)
	assert.EqualValues(t, 0, users)

	var gains int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("pseudo_utilisateur = ?", "dora").Count(&gains).Error)
	assert.EqualValues(t, 0, gains)

	var stats int64
	require.NoError(t, db.Model(&models.Stat{}).Where("pseudo_utilisateur = ?", "dora").Count(&stats).Error)
	assert.EqualValues(t, 0, stats)
}

func TestProfilePictureCatalog(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&models.ProfilePicture{IDPhoto: 1, Chemin: "/img/pdp/1.png"}).Error)

	resp := do(t, app, http.MethodGet, "/photo_profil", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var photos []models.ProfilePicture
	decodeBody(t, resp, &photos)
	require.Len(t, photos, 1)

	resp = do(t, app, http.MethodGet, "/photo_profil/1", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/photo_profil/42", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
