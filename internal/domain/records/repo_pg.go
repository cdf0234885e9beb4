package records

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finx/clinic/internal/domain/errs"
)

// =========== Medical History Repository ===========

type historyRepoPG struct{ pool *pgxpool.Pool }

func NewHistoryRepoPG(pool *pgxpool.Pool) HistoryRepository { return &historyRepoPG{pool: pool} }

const historyCols = `id, patient_id, diagnosis, exams, prescriptions, created_at, updated_at`

func scanHistory(row pgx.Row) (*MedicalHistory, error) {
	var m MedicalHistory
	err := row.Scan(&m.ID, &m.PatientID, &m.Diagnosis, &m.Exams, &m.Prescriptions, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	return &m, err
}

func (r *historyRepoPG) Create(ctx context.Context, m *MedicalHistory) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_history_records (id, patient_id, diagnosis, exams, prescriptions, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.PatientID, m.Diagnosis, m.Exams, m.Prescriptions, m.CreatedAt)
	return err
}

func (r *historyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return scanHistory(r.pool.QueryRow(ctx, `SELECT `+historyCols+` FROM medical_history_records WHERE id = $1`, id))
}

func (r *historyRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalHistory, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+historyCols+` FROM medical_history_records WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalHistory
	for rows.Next() {
		m, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *historyRepoPG) Update(ctx context.Context, m *MedicalHistory) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medical_history_records SET diagnosis=$2, exams=$3, prescriptions=$4, updated_at=$5
		WHERE id = $1`,
		m.ID, m.Diagnosis, m.Exams, m.Prescriptions, m.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *historyRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medical_history_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// =========== External Exam Repository ===========

type examRepoPG struct{ pool *pgxpool.Pool }

func NewExamRepoPG(pool *pgxpool.Pool) ExamRepository { return &examRepoPG{pool: pool} }

const examCols = `id, patient_id, name, exam_date, laboratory, result, created_at, updated_at`

func scanExam(row pgx.Row) (*ExternalExam, error) {
	var e ExternalExam
	err := row.Scan(&e.ID, &e.PatientID, &e.Name, &e.ExamDate, &e.Laboratory, &e.Result, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	return &e, err
}

func (r *examRepoPG) Create(ctx context.Context, e *ExternalExam) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO external_exams (id, patient_id, name, exam_date, laboratory, result, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.PatientID, e.Name, e.ExamDate, e.Laboratory, e.Result, e.CreatedAt)
	return err
}

func (r *examRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*ExternalExam, error) {
	return scanExam(r.pool.QueryRow(ctx, `SELECT `+examCols+` FROM external_exams WHERE id = $1`, id))
}

func (r *examRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*ExternalExam, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+examCols+` FROM external_exams WHERE patient_id = $1 ORDER BY exam_date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ExternalExam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *examRepoPG) Update(ctx context.Context, e *ExternalExam) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE external_exams SET name=$2, exam_date=$3, laboratory=$4, result=$5, updated_at=$6
		WHERE id = $1`,
		e.ID, e.Name, e.ExamDate, e.Laboratory, e.Result, e.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *examRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM external_exams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
