package wizard

import (
	"testing"

	"rapifix_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBasicInfo() BasicInfo {
	return BasicInfo{
		FirstName: "Juan",
		LastName:  "Pérez",
		Phone:     "3511234567",
		WhatsApp:  "3517654321",
		Email:     "juan@example.com",
	}
}

func TestWizard_HappyPath(t *testing.T) {
	t.Parallel()

	s := NewState()
	assert.Equal(t, StepBasicInfo, s.Current)

	require.NoError(t, s.SetBasicInfo(fullBasicInfo()))
	assert.Equal(t, StepCategory, s.Current)

	require.NoError(t, s.SetCategory(3))
	assert.Equal(t, StepNeighborhoods, s.Current)

	require.NoError(t, s.SetNeighborhoods([]uint{1, 2, 3}))
	assert.Equal(t, StepDescription, s.Current)

	years := 10
	require.NoError(t, s.SetDescription(Description{
		Text:            "Plomero con experiencia en instalaciones domiciliarias.",
		YearsExperience: &years,
		Availability:    models.AvailabilityAvailable,
		PriceRange:      models.PriceRangeMedium,
	}))
	assert.Equal(t, StepSubmitted, s.Current)
	assert.True(t, s.IsSubmitted())
}

func TestWizard_WhatsAppDefaultsToPhone(t *testing.T) {
	t.Parallel()

	s := NewState()
	info := fullBasicInfo()
	info.WhatsApp = ""

	require.NoError(t, s.SetBasicInfo(info))
	assert.Equal(t, "3511234567", s.BasicInfo.WhatsApp)
}

func TestWizard_StepMismatch(t *testing.T) {
	t.Parallel()

	s := NewState()

	// Шаги нельзя перепрыгивать.
	err := s.SetCategory(1)
	assert.ErrorIs(t, err, ErrStepMismatch)

	err = s.SetNeighborhoods([]uint{1})
	assert.ErrorIs(t, err, ErrStepMismatch)

	err = s.SetDescription(Description{Text: "x"})
	assert.ErrorIs(t, err, ErrStepMismatch)

	assert.Equal(t, StepBasicInfo, s.Current)
}

func TestWizard_BackPreservesData(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.NoError(t, s.SetBasicInfo(fullBasicInfo()))
	require.NoError(t, s.SetCategory(7))
	require.NoError(t, s.SetNeighborhoods([]uint{4, 5}))

	// Назад до категории: всё введенное остается на месте.
	require.NoError(t, s.Back())
	require.NoError(t, s.Back())
	assert.Equal(t, StepCategory, s.Current)
	assert.Equal(t, uint(7), s.CategoryID)
	assert.Equal(t, []uint{4, 5}, s.NeighborhoodIDs)
	assert.Equal(t, "Juan", s.BasicInfo.FirstName)

	// Вперед заново: новые данные перезаписывают старые.
	require.NoError(t, s.SetCategory(9))
	assert.Equal(t, uint(9), s.CategoryID)
	assert.Equal(t, StepNeighborhoods, s.Current)
}

func TestWizard_BackFromFirstStep(t *testing.T) {
	t.Parallel()

	s := NewState()
	assert.Error(t, s.Back())
	assert.Equal(t, StepBasicInfo, s.Current)
}

func TestWizard_NeighborhoodLimit(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.NoError(t, s.SetBasicInfo(fullBasicInfo()))
	require.NoError(t, s.SetCategory(1))

	// Шестой район и дубликаты молча отбрасываются.
	require.NoError(t, s.SetNeighborhoods([]uint{1, 2, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, s.NeighborhoodIDs)
}

func TestWizard_NeighborhoodsEmpty(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.NoError(t, s.SetBasicInfo(fullBasicInfo()))
	require.NoError(t, s.SetCategory(1))

	err := s.SetNeighborhoods(nil)
	assert.Error(t, err)
	assert.Equal(t, StepNeighborhoods, s.Current)
}

func TestWizard_SubmittedIsTerminal(t *testing.T) {
	t.Parallel()

	s := NewState()
	require.NoError(t, s.SetBasicInfo(fullBasicInfo()))
	require.NoError(t, s.SetCategory(1))
	require.NoError(t, s.SetNeighborhoods([]uint{1}))
	require.NoError(t, s.SetDescription(Description{Text: "Electricista matriculado."}))

	assert.ErrorIs(t, s.SetBasicInfo(fullBasicInfo()), ErrWizardDone)
	assert.ErrorIs(t, s.SetCategory(2), ErrWizardDone)
	assert.ErrorIs(t, s.Back(), ErrWizardDone)
	assert.Equal(t, StepSubmitted, s.Current)
}
