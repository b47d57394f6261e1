package catalog

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemRepo(SeedDoctors()))
}

func TestService_List(t *testing.T) {
	svc := newTestService()
	doctors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 9 {
		t.Errorf("expected 9 doctors, got %d", len(doctors))
	}
	if doctors[0].ID != "doctor-1" {
		t.Errorf("expected doctor-1 first, got %s", doctors[0].ID)
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService()
	d, err := svc.Get(context.Background(), "doctor-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Dr. Michael Chen" {
		t.Errorf("expected Dr. Michael Chen, got %s", d.Name)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Get(context.Background(), "doctor-999")
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestService_Search(t *testing.T) {
	svc := newTestService()
	doctors, err := svc.Search(context.Background(), FilterParams{
		Availability: AvailabilityAvailable,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 7 {
		t.Errorf("expected 7 available doctors, got %d", len(doctors))
	}
}

func TestService_Specialties(t *testing.T) {
	svc := newTestService()
	specs, err := svc.Specialties(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(specs) != 10 {
		t.Errorf("expected 10 entries, got %d", len(specs))
	}
	if specs[0] != SpecialtyAll {
		t.Errorf("expected %q first, got %q", SpecialtyAll, specs[0])
	}
}

func TestDoctor_Bookable(t *testing.T) {
	d := Doctor{AvailableSlots: 3}
	if !d.Bookable() {
		t.Error("expected doctor with slots to be bookable")
	}
	d.AvailableSlots = 0
	if d.Bookable() {
		t.Error("expected doctor without slots to not be bookable")
	}
}
