package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, name, dob, address, contact
    FROM employees
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	index := map[int64]int{}
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.DOB, &emp.Address, &emp.Contact); err != nil {
			return nil, err
		}
		emp.Qualifications = make([]Qualification, 0)
		index[emp.ID] = len(out)
		out = append(out, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	qualRows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, course, year_passed, marks_percentage
    FROM qualifications
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer qualRows.Close()

	for qualRows.Next() {
		var qual Qualification
		if err := qualRows.Scan(&qual.ID, &qual.EmployeeID, &qual.Course, &qual.YearPassed, &qual.MarksPercentage); err != nil {
			return nil, err
		}
		if i, ok := index[qual.EmployeeID]; ok {
			out[i].Qualifications = append(out[i].Qualifications, qual)
		}
	}
	return out, qualRows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, user_id, name, dob, address, contact
    FROM employees
    WHERE id = $1
  `, id).Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.DOB, &emp.Address, &emp.Contact)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	emp.Qualifications, err = s.loadQualifications(ctx, id)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, ownerUserID int64, input Input) (*Employee, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	emp := Employee{
		UserID:         ownerUserID,
		Name:           input.Name,
		DOB:            input.DOB,
		Address:        input.Address,
		Contact:        input.Contact,
		Qualifications: make([]Qualification, 0, len(input.Qualifications)),
	}
	err = tx.QueryRow(ctx, `
    INSERT INTO employees (user_id, name, dob, address, contact)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, ownerUserID, input.Name, input.DOB, input.Address, input.Contact).Scan(&emp.ID)
	if err != nil {
		return nil, err
	}

	emp.Qualifications, err = insertQualifications(ctx, tx, emp.ID, input.Qualifications)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &emp, nil
}

// ReplaceEmployee overwrites the scalar fields and swaps the entire
// qualification set in one transaction. The old rows are deleted outright, so
// surviving qualifications still get fresh ids.
func (s *Store) ReplaceEmployee(ctx context.Context, id int64, input Input) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
    UPDATE employees
    SET name = $1, dob = $2, address = $3, contact = $4, updated_at = now()
    WHERE id = $5
  `, input.Name, input.DOB, input.Address, input.Contact, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, "DELETE FROM qualifications WHERE employee_id = $1", id); err != nil {
		return err
	}
	if _, err := insertQualifications(ctx, tx, id, input.Qualifications); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteEmployee removes the qualifications and the employee row together.
// The schema also declares ON DELETE CASCADE, but the explicit delete keeps
// the whole cascade visible in one transaction.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM qualifications WHERE employee_id = $1", id); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (s *Store) loadQualifications(ctx context.Context, employeeID int64) ([]Qualification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, course, year_passed, marks_percentage
    FROM qualifications
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Qualification, 0)
	for rows.Next() {
		var qual Qualification
		if err := rows.Scan(&qual.ID, &qual.EmployeeID, &qual.Course, &qual.YearPassed, &qual.MarksPercentage); err != nil {
			return nil, err
		}
		out = append(out, qual)
	}
	return out, rows.Err()
}

func insertQualifications(ctx context.Context, tx pgx.Tx, employeeID int64, inputs []QualificationInput) ([]Qualification, error) {
	out := make([]Qualification, 0, len(inputs))
	for _, in := range inputs {
		qual := Qualification{
			EmployeeID:      employeeID,
			Course:          in.Course,
			YearPassed:      in.YearPassed,
			MarksPercentage: in.MarksPercentage,
		}
		err := tx.QueryRow(ctx, `
      INSERT INTO qualifications (employee_id, course, year_passed, marks_percentage)
      VALUES ($1, $2, $3, $4)
      RETURNING id
    `, employeeID, in.Course, in.YearPassed, in.MarksPercentage).Scan(&qual.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, qual)
	}
	return out, nil
}
