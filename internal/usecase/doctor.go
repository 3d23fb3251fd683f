package usecase

import (
	"errors"

	"github.com/3-lines-studio/folio/internal/core"
)

type DoctorInput struct {
	ContentPath string
}

type DoctorOutput struct {
	Issues []core.FieldError
	Error  error
}

func (o DoctorOutput) Healthy() bool {
	return o.Error == nil && len(o.Issues) == 0
}

type DoctorService struct {
	loader ContentLoader
}

func NewDoctorService(loader ContentLoader) *DoctorService {
	return &DoctorService{loader: loader}
}

// Check loads and validates the content file. Validation problems come back
// as Issues; anything else (unreadable file, bad syntax) is Error.
func (s *DoctorService) Check(input DoctorInput) DoctorOutput {
	content, err := s.loader.Load(input.ContentPath)
	if err == nil {
		err = core.Validate(content)
	}
	if err == nil {
		return DoctorOutput{}
	}

	var verr *core.ValidationError
	if errors.As(err, &verr) {
		return DoctorOutput{Issues: verr.Issues}
	}
	return DoctorOutput{Error: err}
}
