package services

import (
	"testing"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitNotifiesOrganizers(t *testing.T) {
	mail := &fakeMailer{}
	svc := NewContactService(openTestDB(t), mail, "orga@example.com")

	err := svc.Submit(ContactInput{
		FullName: "Awa Diabaté",
		Email:    "awa@example.com",
		Subject:  "Question",
		Message:  "Quand commence la compétition ?",
	}, "1.2.3.4")
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0], "orga@example.com")

	messages, err := svc.List(0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "1.2.3.4", messages[0].IP)
}

func TestContactSubmitValidation(t *testing.T) {
	svc := NewContactService(openTestDB(t), &fakeMailer{}, "orga@example.com")

	err := svc.Submit(ContactInput{FullName: "Awa", Email: "awa@example.com"}, "1.2.3.4")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = svc.Submit(ContactInput{
		FullName: "Awa", Email: "pas-un-email", Subject: "s", Message: "m",
	}, "1.2.3.4")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestContactArchiveAndDelete(t *testing.T) {
	svc := NewContactService(openTestDB(t), &fakeMailer{}, "orga@example.com")

	require.NoError(t, svc.Submit(ContactInput{
		FullName: "Awa Diabaté", Email: "awa@example.com", Subject: "s", Message: "m",
	}, "1.2.3.4"))

	messages, err := svc.List(0)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	require.NoError(t, svc.SetArchived(messages[0].ID, true))
	messages, err = svc.List(0)
	require.NoError(t, err)
	assert.Equal(t, 1, messages[0].Archived)

	require.NoError(t, svc.Delete(messages[0].ID))
	assert.True(t, apperr.IsKind(svc.Delete(messages[0].ID), apperr.KindNotFound))
}
