package scheduler

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yipfram/DidactypoBack/backend/models"
	"github.com/yipfram/DidactypoBack/backend/services"
	"github.com/yipfram/DidactypoBack/backend/utils"
)

func TestStartRegistersWeeklyJob(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:scheduler_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.WeeklyChallenge{}, &models.ChallengeCompletion{}, &models.UserBadge{}))

	weekly := services.NewWeeklyChallengeService(db, utils.InitLogger())
	c, err := Start(weekly, utils.InitLogger())
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
