package scheduling

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/domain/errs"
	"github.com/finx/clinic/internal/validation"
)

// -- Mock Repository --

type mockRepo struct {
	appts map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	m.appts[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) List(_ context.Context, f ListFilter) ([]*Appointment, error) {
	var matched []*Appointment
	for _, a := range m.appts {
		if f.PatientID != nil && a.PatientID != *f.PatientID {
			continue
		}
		if f.From != nil && a.AppointmentDate.Before(*f.From) {
			continue
		}
		if f.To != nil && a.AppointmentDate.After(*f.To) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AppointmentDate.Before(matched[j].AppointmentDate)
	})
	if f.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return m.List(ctx, ListFilter{PatientID: &patientID, Limit: len(m.appts)})
}

func (m *mockRepo) ByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error) {
	return m.List(ctx, ListFilter{From: &start, To: &end, Limit: len(m.appts)})
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := m.appts[a.ID]; !ok {
		return errs.ErrNotFound
	}
	m.appts[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.appts[id]; !ok {
		return errs.ErrNotFound
	}
	delete(m.appts, id)
	return nil
}

type mockDirectory struct {
	known map[uuid.UUID]bool
}

func (d *mockDirectory) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return d.known[id], nil
}

func setupService(patients ...uuid.UUID) (*Service, *mockRepo) {
	repo := newMockRepo()
	dir := &mockDirectory{known: make(map[uuid.UUID]bool)}
	for _, id := range patients {
		dir.known[id] = true
	}
	return NewService(repo, dir), repo
}

func validCreateInput(patientID uuid.UUID) CreateInput {
	return CreateInput{
		PatientID:       patientID,
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		DurationMinutes: 30,
		Type:            "Consultation",
		Notes:           "First visit",
	}
}

func TestService_Create(t *testing.T) {
	patientID := uuid.New()
	svc, repo := setupService(patientID)

	a, err := svc.Create(context.Background(), validCreateInput(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected initial status Scheduled, got %s", a.Status)
	}
	if a.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if _, ok := repo.appts[a.ID]; !ok {
		t.Error("expected appointment persisted")
	}
}

func TestService_Create_PastDate(t *testing.T) {
	patientID := uuid.New()
	svc, repo := setupService(patientID)

	in := validCreateInput(patientID)
	in.AppointmentDate = time.Now().AddDate(0, 0, -1)
	_, err := svc.Create(context.Background(), in)

	var ves validation.Errors
	if !errors.As(err, &ves) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(ves) != 1 || ves[0].Field != "appointment_date" {
		t.Errorf("expected single appointment_date error, got %v", ves)
	}
	if len(repo.appts) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestService_Create_DurationOutOfRange(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	for _, duration := range []int{0, -15, 481} {
		in := validCreateInput(patientID)
		in.DurationMinutes = duration
		_, err := svc.Create(context.Background(), in)

		var ves validation.Errors
		if !errors.As(err, &ves) {
			t.Fatalf("duration %d: expected validation.Errors, got %v", duration, err)
		}
		if len(ves) != 1 || ves[0].Field != "duration_minutes" {
			t.Errorf("duration %d: expected single duration_minutes error, got %v", duration, ves)
		}
	}
}

func TestService_Create_UnknownPatient(t *testing.T) {
	svc, repo := setupService()

	_, err := svc.Create(context.Background(), validCreateInput(uuid.New()))
	if !errors.Is(err, errs.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if len(repo.appts) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestService_Update_InvalidStatus(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	a, err := svc.Create(context.Background(), validCreateInput(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Update(context.Background(), a.ID, UpdateInput{
		AppointmentDate: a.AppointmentDate,
		DurationMinutes: 30,
		Status:          "Rescheduled",
		Type:            "Consultation",
	})

	var ves validation.Errors
	if !errors.As(err, &ves) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(ves) != 1 || ves[0].Field != "status" {
		t.Errorf("expected single status error, got %v", ves)
	}
}

func TestService_Update_AllowsPastDate(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	a, err := svc.Create(context.Background(), validCreateInput(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	past := time.Now().AddDate(0, 0, -2)
	updated, err := svc.Update(context.Background(), a.ID, UpdateInput{
		AppointmentDate: past,
		DurationMinutes: 45,
		Status:          StatusCompleted,
		Type:            "Consultation",
		Notes:           "Patient seen",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("expected status Completed, got %s", updated.Status)
	}
	if !updated.AppointmentDate.Equal(past) {
		t.Error("expected past date accepted on update")
	}
	if updated.UpdatedAt == nil {
		t.Fatal("expected updated_at set")
	}
}

func TestService_Update_EachStatusAccepted(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	a, err := svc.Create(context.Background(), validCreateInput(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, status := range []string{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		updated, err := svc.Update(context.Background(), a.ID, UpdateInput{
			AppointmentDate: a.AppointmentDate,
			DurationMinutes: 30,
			Status:          status,
			Type:            "Consultation",
		})
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected status %s, got %s", status, updated.Status)
		}
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := setupService()

	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{
		AppointmentDate: time.Now(),
		DurationMinutes: 30,
		Status:          StatusConfirmed,
		Type:            "Consultation",
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ByDateRange_Inverted(t *testing.T) {
	svc, _ := setupService()

	start := time.Now()
	end := start.AddDate(0, 0, -7)
	items, err := svc.ByDateRange(context.Background(), start, end)
	if !errors.Is(err, errs.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if items != nil {
		t.Error("expected no partial result")
	}
}

func TestService_ByDateRange_InclusiveBounds(t *testing.T) {
	patientID := uuid.New()
	svc, repo := setupService(patientID)

	base := time.Now().AddDate(0, 0, 10).Truncate(time.Hour)
	for _, offset := range []int{0, 1, 2} {
		in := validCreateInput(patientID)
		in.AppointmentDate = base.AddDate(0, 0, offset)
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(repo.appts) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(repo.appts))
	}

	items, err := svc.ByDateRange(context.Background(), base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 appointments in range, got %d", len(items))
	}
	if items[0].AppointmentDate.After(items[1].AppointmentDate) {
		t.Error("expected ascending order by appointment date")
	}
}

func TestService_List_FiltersByPatient(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	svc, _ := setupService(first, second)

	for i, pid := range []uuid.UUID{first, first, second} {
		in := validCreateInput(pid)
		in.AppointmentDate = time.Now().AddDate(0, 0, i+1)
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, err := svc.List(context.Background(), ListFilter{PatientID: &first, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 appointments for patient, got %d", len(items))
	}
	for _, a := range items {
		if a.PatientID != first {
			t.Error("expected only the scoped patient's appointments")
		}
	}
}

func TestService_ByPatient_UnknownPatient(t *testing.T) {
	svc, _ := setupService()

	items, err := svc.ByPatient(context.Background(), uuid.New())
	if !errors.Is(err, errs.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if items != nil {
		t.Error("expected no result for unknown patient")
	}
}

func TestService_ByPatient_ReturnsAllChronologically(t *testing.T) {
	patientID := uuid.New()
	other := uuid.New()
	svc, _ := setupService(patientID, other)

	for _, offset := range []int{3, 1, 2} {
		in := validCreateInput(patientID)
		in.AppointmentDate = time.Now().AddDate(0, 0, offset)
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), validCreateInput(other)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.ByPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].AppointmentDate.Before(items[i-1].AppointmentDate) {
			t.Error("expected ascending order by appointment date")
		}
	}
	for _, a := range items {
		if a.PatientID != patientID {
			t.Error("expected only the scoped patient's appointments")
		}
	}
}

func TestService_List_Pagination(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	for i := 1; i <= 5; i++ {
		in := validCreateInput(patientID)
		in.AppointmentDate = time.Now().AddDate(0, 0, i)
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page2, err := svc.List(context.Background(), ListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page2))
	}

	last, err := svc.List(context.Background(), ListFilter{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(last))
	}
}

func TestService_Delete_TwiceReturnsNotFound(t *testing.T) {
	patientID := uuid.New()
	svc, _ := setupService(patientID)

	a, err := svc.Create(context.Background(), validCreateInput(patientID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
