package employee

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore mimics the real store's observable behavior, including the
// full-replace semantics that regenerate qualification ids on every write.
type fakeStore struct {
	employees  map[int64]*Employee
	nextEmpID  int64
	nextQualID int64
	calls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[int64]*Employee{}, nextEmpID: 1, nextQualID: 1}
}

func (f *fakeStore) ListEmployees(ctx context.Context) ([]Employee, error) {
	f.calls++
	out := make([]Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeStore) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	f.calls++
	emp, ok := f.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *emp
	return &copied, nil
}

func (f *fakeStore) CreateEmployee(ctx context.Context, ownerUserID int64, input Input) (*Employee, error) {
	f.calls++
	emp := &Employee{
		ID:      f.nextEmpID,
		UserID:  ownerUserID,
		Name:    input.Name,
		DOB:     input.DOB,
		Address: input.Address,
		Contact: input.Contact,
	}
	f.nextEmpID++
	emp.Qualifications = f.buildQualifications(emp.ID, input.Qualifications)
	f.employees[emp.ID] = emp
	copied := *emp
	return &copied, nil
}

func (f *fakeStore) ReplaceEmployee(ctx context.Context, id int64, input Input) error {
	f.calls++
	emp, ok := f.employees[id]
	if !ok {
		return ErrNotFound
	}
	emp.Name = input.Name
	emp.DOB = input.DOB
	emp.Address = input.Address
	emp.Contact = input.Contact
	emp.Qualifications = f.buildQualifications(id, input.Qualifications)
	return nil
}

func (f *fakeStore) DeleteEmployee(ctx context.Context, id int64) error {
	f.calls++
	if _, ok := f.employees[id]; !ok {
		return ErrNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) buildQualifications(employeeID int64, inputs []QualificationInput) []Qualification {
	out := make([]Qualification, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Qualification{
			ID:              f.nextQualID,
			EmployeeID:      employeeID,
			Course:          in.Course,
			YearPassed:      in.YearPassed,
			MarksPercentage: in.MarksPercentage,
		})
		f.nextQualID++
	}
	return out
}

func sampleInput() Input {
	return Input{
		Name:    "Bob",
		DOB:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Address: "1 Main St",
		Contact: "555-1234",
		Qualifications: []QualificationInput{
			{Course: "BSc", YearPassed: 2012, MarksPercentage: 75},
			{Course: "MSc", YearPassed: 2014, MarksPercentage: 81.5},
		},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	service := NewService(newFakeStore())

	created, err := service.Create(context.Background(), 7, sampleInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner stamp 7, got %d", created.UserID)
	}

	got, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != "Bob" || got.Address != "1 Main St" || got.Contact != "555-1234" {
		t.Fatalf("scalar fields mismatch: %+v", got)
	}
	if len(got.Qualifications) != 2 {
		t.Fatalf("expected 2 qualifications, got %d", len(got.Qualifications))
	}
	for _, qual := range got.Qualifications {
		if qual.ID == 0 {
			t.Fatal("expected assigned qualification id")
		}
		if qual.EmployeeID != created.ID {
			t.Fatalf("qualification bound to %d, want %d", qual.EmployeeID, created.ID)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{
			name:   "empty name",
			mutate: func(in *Input) { in.Name = "" },
		},
		{
			name:   "whitespace name",
			mutate: func(in *Input) { in.Name = "   " },
		},
		{
			name:   "empty course",
			mutate: func(in *Input) { in.Qualifications[0].Course = " " },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			service := NewService(store)

			input := sampleInput()
			tc.mutate(&input)

			_, err := service.Create(context.Background(), 1, input)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Reason == "" {
				t.Fatal("expected a reason on the validation error")
			}
			if store.calls != 0 {
				t.Fatal("invalid input must not reach the store")
			}
		})
	}
}

func TestUpdateAcceptsEmptyFields(t *testing.T) {
	// Update deliberately skips validation; an empty name overwrites the
	// stored one. Create and Update are asymmetric on purpose.
	service := NewService(newFakeStore())

	created, err := service.Create(context.Background(), 1, sampleInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if err := service.Update(context.Background(), created.ID, Input{Name: ""}); err != nil {
		t.Fatalf("expected empty-name update to succeed, got %v", err)
	}

	got, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != "" {
		t.Fatalf("expected name overwritten with empty string, got %q", got.Name)
	}
}

func TestUpdateReplacesQualifications(t *testing.T) {
	service := NewService(newFakeStore())

	created, err := service.Create(context.Background(), 1, sampleInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	oldIDs := map[int64]bool{}
	for _, qual := range created.Qualifications {
		oldIDs[qual.ID] = true
	}

	next := sampleInput()
	next.Qualifications = []QualificationInput{
		{Course: "PhD", YearPassed: 2020, MarksPercentage: 90},
	}
	if err := service.Update(context.Background(), created.ID, next); err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if len(got.Qualifications) != 1 {
		t.Fatalf("expected 1 qualification after replace, got %d", len(got.Qualifications))
	}
	if got.Qualifications[0].Course != "PhD" {
		t.Fatalf("expected replaced course, got %q", got.Qualifications[0].Course)
	}
	if oldIDs[got.Qualifications[0].ID] {
		t.Fatal("expected fresh qualification id after replace")
	}
}

func TestUpdateMissingEmployee(t *testing.T) {
	service := NewService(newFakeStore())

	err := service.Update(context.Background(), 99, sampleInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	service := NewService(newFakeStore())

	created, err := service.Create(context.Background(), 1, sampleInput())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := service.Get(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := service.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestListReturnsAllEmployees(t *testing.T) {
	service := NewService(newFakeStore())

	for _, owner := range []int64{1, 2, 3} {
		if _, err := service.Create(context.Background(), owner, sampleInput()); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	// No ownership filter on read: every authenticated caller sees all rows.
	all, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(all))
	}
}

func TestMarksPercentageUnbounded(t *testing.T) {
	service := NewService(newFakeStore())

	input := sampleInput()
	input.Qualifications = []QualificationInput{
		{Course: "BSc", YearPassed: 2012, MarksPercentage: 150.5},
	}

	created, err := service.Create(context.Background(), 1, input)
	if err != nil {
		t.Fatalf("expected out-of-range marks to be accepted, got %v", err)
	}
	if created.Qualifications[0].MarksPercentage != 150.5 {
		t.Fatalf("marks not preserved: %v", created.Qualifications[0].MarksPercentage)
	}
}
