package employee

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("employee not found")

// ValidationError is an expected outcome, not a fault; handlers translate it
// to a 400 with the reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type StoreAPI interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id int64) (*Employee, error)
	CreateEmployee(ctx context.Context, ownerUserID int64, input Input) (*Employee, error)
	ReplaceEmployee(ctx context.Context, id int64, input Input) error
	DeleteEmployee(ctx context.Context, id int64) error
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.Store.ListEmployees(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.Store.GetEmployee(ctx, id)
}

// Create validates required fields and persists a new aggregate stamped with
// the caller as owner. This is the only operation that checks ownership or
// validates input; Update deliberately does neither.
func (s *Service) Create(ctx context.Context, callerUserID int64, input Input) (*Employee, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.Store.CreateEmployee(ctx, callerUserID, input)
}

// Update overwrites every scalar field and replaces the whole qualification
// collection. It accepts empty fields: the original system never validated
// updates, and that asymmetry is part of the observable contract.
func (s *Service) Update(ctx context.Context, id int64, input Input) error {
	return s.Store.ReplaceEmployee(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.Store.DeleteEmployee(ctx, id)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Reason: "employee name is required"}
	}
	for _, q := range input.Qualifications {
		if strings.TrimSpace(q.Course) == "" {
			return &ValidationError{Reason: "qualification course is required"}
		}
	}
	return nil
}
