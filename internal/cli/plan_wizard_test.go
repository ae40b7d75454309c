package cli

import (
	"testing"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardAnswers_Defaults(t *testing.T) {
	a := newWizardAnswers()
	a.User = " u1 "

	req, err := a.request()
	require.NoError(t, err)
	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, app.DefaultCity, req.City)
	assert.Equal(t, app.DefaultDuration, req.Duration)
	assert.Equal(t, app.DefaultGuests, req.Guests)
	assert.Equal(t, app.DefaultIntensity, req.Intensity)
	assert.Nil(t, req.StartDate)
}

func TestWizardAnswers_Full(t *testing.T) {
	a := newWizardAnswers()
	a.User = "u2"
	a.Days = "4"
	a.Start = "2026-09-14"
	a.Intensity = string(domain.IntensityIntense)
	a.Museums = []string{"histoire"}
	a.Spa = true

	req, err := a.request()
	require.NoError(t, err)
	assert.Equal(t, 4, req.Duration)
	require.NotNil(t, req.StartDate)
	assert.Equal(t, "2026-09-14", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, []domain.Category{domain.CategoryMuseums, domain.CategorySpas}, req.Families())
}

func TestWizardAnswers_Invalid(t *testing.T) {
	a := newWizardAnswers()
	a.Days = "many"
	_, err := a.request()
	assert.Error(t, err)

	a = newWizardAnswers()
	a.Start = "14/09/2026"
	_, err = a.request()
	assert.Error(t, err)
}

func TestWizardValidators(t *testing.T) {
	assert.Error(t, validateRequired("  "))
	assert.NoError(t, validateRequired("Paris"))
	assert.Error(t, validatePositiveInt("0"))
	assert.NoError(t, validatePositiveInt("3"))
	assert.NoError(t, validateOptionalDate(""))
	assert.Error(t, validateOptionalDate("demain"))
}

func TestGenerateForm_Builds(t *testing.T) {
	assert.NotNil(t, generateForm(newWizardAnswers()))
}
