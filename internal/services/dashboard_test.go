package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardBuild(t *testing.T) {
	db := openTestDB(t)
	mail := &fakeMailer{}

	candidates := NewCandidateService(db, mail, "QI26")
	voting := NewVotingService(db)
	scoring := NewScoringService(db)
	settings := NewSettingsService(db)
	contacts := NewContactService(db, mail, "orga@example.com")
	donations := NewDonationService(db)
	svc := NewDashboardService(candidates, voting, scoring, settings, contacts, donations)

	abidjan := seedCandidate(t, db, "Awa Diabaté", "+22501020304", models.CandidateStatusApproved)
	abidjan.City, abidjan.Country = "Abidjan", "Côte d'Ivoire"
	require.NoError(t, db.Save(abidjan).Error)
	bouake := seedCandidate(t, db, "Moussa Koné", "+22505060708", models.CandidateStatusPending)
	bouake.City, bouake.Country = "Bouaké", "Côte d'Ivoire"
	require.NoError(t, db.Save(bouake).Error)

	require.NoError(t, db.Create(&models.Vote{CandidateID: abidjan.ID, IP: "1.2.3.4"}).Error)
	require.NoError(t, scoring.SubmitScore(ScoreInput{CandidateID: abidjan.ID, JudgeName: "Juge 1", ThemeChosenScore: 8, ThemeImposedScore: 7}))

	_, err := donations.Submit(DonationInput{DonorName: "Fatou Traoré", Amount: 1000, PaymentMethod: "WAVE"})
	require.NoError(t, err)
	require.NoError(t, contacts.Submit(ContactInput{
		FullName: "Visiteur Curieux", Email: "v@example.com", Subject: "s", Message: "m",
	}, "1.2.3.4"))

	dashboard, err := svc.Build()
	require.NoError(t, err)

	// The admin roster includes pending candidates, unlike the public list.
	assert.Len(t, dashboard.Candidates, 2)
	assert.Len(t, dashboard.Ranking, 2)
	assert.Len(t, dashboard.Contacts, 1)
	require.NotNil(t, dashboard.Settings)

	assert.Equal(t, 2, dashboard.Stats.TotalCandidates)
	assert.EqualValues(t, 1, dashboard.Stats.TotalVotes)
	assert.EqualValues(t, 1, dashboard.Stats.PendingDonations)
	assert.Equal(t, 1, dashboard.Stats.Countries)
	assert.Equal(t, 2, dashboard.Stats.Cities)
}
