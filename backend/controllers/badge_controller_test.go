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

func createBadge(t *testing.T, app *fiber.App, titre string) int {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/badges/", fiber.Map{
		"titre_badge":       titre,
		"description_badge": "description",
		"image_badge":       "/img/badge.png",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var badge models.Badge
	decodeBody(t, resp, &badge)
	require.NotZero(t, badge.IDBadge)
	return badge.IDBadge
}

func TestGrantBadge(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)
	idBadge := createBadge(t, app, "Premier pas")

	resp := do(t, app, http.MethodPost,
		fmt.Sprintf("/gain_badge?pseudo_utilisateur=dora&id_badge=%d", idBadge), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Badge ajouté avec succès", body["message"])

	// Déjà possédé : 204, sans doublon en base.
	resp = do(t, app, http.MethodPost,
		fmt.Sprintf("/gain_badge?pseudo_utilisateur=dora&id_badge=%d", idBadge), nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var gains int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("pseudo_utilisateur = ?", "dora").Count(&gains).Error)
	assert.EqualValues(t, 1, gains)
}

func TestListUserBadges(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)
	premier := createBadge(t, app, "Premier pas")
	second := createBadge(t, app, "Marathonien")

	for _, id := range []int{premier, second} {
		resp := do(t, app, http.MethodPost,
			fmt.Sprintf("/gain_badge?pseudo_utilisateur=dora&id_badge=%d", id), nil, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := do(t, app, http.MethodGet, "/badge/dora", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var badges []models.Badge
	decodeBody(t, resp, &badges)
	assert.Len(t, badges, 2)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/badge_membres/%d", premier), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var membres []models.UserSummary
	decodeBody(t, resp, &membres)
	require.Len(t, membres, 1)
	assert.Equal(t, "dora", membres[0].Pseudo)

	resp = do(t, app, http.MethodGet, "/badge_membres/9999", nil, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteUserBadges(t *testing.T) {
	app, db := newTestApp(t)
	createUser(t, db, "dora", "Cl@vier2024", false)

	resp := do(t, app, http.MethodDelete, "/gain_badge/dora", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	idBadge := createBadge(t, app, "Premier pas")
	resp = do(t, app, http.MethodPost,
		fmt.Sprintf("/gain_badge?pseudo_utilisateur=dora&id_badge=%d", idBadge), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/gain_badge/dora", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var gains int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("pseudo_utilisateur = ?", "dora").Count(&gains).Error)
	assert.EqualValues(t, 0, gains)
}

func TestGetBadgeIntrouvable(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/badge_manquant/9999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Badge introuvable.", body["detail"])
}
