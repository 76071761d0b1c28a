package wizard

import (
	"rapifix_backend/internal/models"

	"rapifix_backend/pkg/apperrors"
)

// Step - шаг мастера регистрации профессионала.
type Step string

const (
	StepBasicInfo     Step = "basic_info"
	StepCategory      Step = "category"
	StepNeighborhoods Step = "neighborhoods"
	StepDescription   Step = "description"
	StepSubmitted     Step = "submitted"
)

// MaxNeighborhoods - потолок выбора районов одинаков для всех тарифов.
const MaxNeighborhoods = 5

var order = []Step{StepBasicInfo, StepCategory, StepNeighborhoods, StepDescription, StepSubmitted}

// BasicInfo - данные первого шага.
type BasicInfo struct {
	FirstName string
	LastName  string
	Phone     string
	WhatsApp  string
	Email     string
}

// Description - данные последнего заполняемого шага.
type Description struct {
	Text            string
	YearsExperience *int
	Availability    models.Availability
	PriceRange      models.PriceRange
}

// State - накопленное состояние мастера. Данные шагов
// сохраняются при движении назад и перезаписываются при
// повторном прохождении вперед.
type State struct {
	Current         Step
	BasicInfo       BasicInfo
	CategoryID      uint
	NeighborhoodIDs []uint
	Description     Description
}

// NewState создает мастер на первом шаге.
func NewState() *State {
	return &State{Current: StepBasicInfo}
}

// ErrWizardDone возвращается при любой попытке изменить
// уже отправленный мастер.
var ErrWizardDone = apperrors.New(
	apperrors.CodeInvalidOperation,
	"registration",
	"El registro ya fue enviado",
	409,
)

// ErrStepMismatch возвращается, когда присланы данные не того шага,
// на котором находится мастер.
var ErrStepMismatch = apperrors.New(
	apperrors.CodeInvalidOperation,
	"registration",
	"Completá el paso actual antes de continuar",
	409,
)

// SetBasicInfo записывает данные первого шага и переводит мастер дальше.
func (s *State) SetBasicInfo(info BasicInfo) error {
	if err := s.checkStep(StepBasicInfo); err != nil {
		return err
	}
	if info.WhatsApp == "" {
		// По умолчанию WhatsApp совпадает с основным телефоном.
		info.WhatsApp = info.Phone
	}
	s.BasicInfo = info
	s.Current = StepCategory
	return nil
}

// SetCategory записывает категорию и переводит мастер дальше.
func (s *State) SetCategory(categoryID uint) error {
	if err := s.checkStep(StepCategory); err != nil {
		return err
	}
	s.CategoryID = categoryID
	s.Current = StepNeighborhoods
	return nil
}

// SetNeighborhoods записывает выбор районов и переводит мастер дальше.
// Список приходит целиком: дубликаты схлопываются, всё сверх лимита
// молча отбрасывается, выбор сверх пяти не меняет состояние.
func (s *State) SetNeighborhoods(ids []uint) error {
	if err := s.checkStep(StepNeighborhoods); err != nil {
		return err
	}

	deduped := dedupeCapped(ids, MaxNeighborhoods)
	if len(deduped) == 0 {
		return apperrors.New(
			apperrors.CodeValidationFailed,
			"registration",
			"Seleccioná al menos un barrio",
			400,
		)
	}

	s.NeighborhoodIDs = deduped
	s.Current = StepDescription
	return nil
}

// SetDescription записывает описание и переводит мастер в Submitted.
// Состояние Submitted терминально: после него мастер неизменяем.
func (s *State) SetDescription(d Description) error {
	if err := s.checkStep(StepDescription); err != nil {
		return err
	}
	s.Description = d
	s.Current = StepSubmitted
	return nil
}

// Back возвращает мастер на предыдущий шаг, сохраняя введенные данные.
// На первом шаге и после отправки движение назад невозможно.
func (s *State) Back() error {
	if s.Current == StepSubmitted {
		return ErrWizardDone
	}
	if s.Current == StepBasicInfo {
		return ErrStepMismatch
	}
	for i, step := range order {
		if step == s.Current {
			s.Current = order[i-1]
			return nil
		}
	}
	return ErrStepMismatch
}

// IsSubmitted сообщает, завершен ли мастер.
func (s *State) IsSubmitted() bool {
	return s.Current == StepSubmitted
}

func (s *State) checkStep(expected Step) error {
	if s.Current == StepSubmitted {
		return ErrWizardDone
	}
	if s.Current != expected {
		return ErrStepMismatch
	}
	return nil
}

func dedupeCapped(ids []uint, limit int) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, limit)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == limit {
			break
		}
	}
	return out
}
