package repo_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/camm-health/stayload/internal/model"
	"github.com/camm-health/stayload/internal/repo"
)

func record(name string) model.PatientRecord {
	return model.PatientRecord{
		Name:          name,
		Age:           70,
		AdmissionDate: "2025-01-10",
		Service:       "Geriatría",
		Diagnosis:     "Caída",
		RiskLevel:     model.RiskLow,
		Status:        model.StatusActive,
		CaseStatus:    model.CaseOpen,
	}
}

func TestAddAndGet(t *testing.T) {
	r := repo.NewEpisodeRepository()

	ep := r.Add(record("Ana Silva"))
	if ep.ID == uuid.Nil {
		t.Error("Add should assign a non-nil ID")
	}
	if ep.CreatedAt.IsZero() {
		t.Error("Add should assign CreatedAt")
	}

	got, ok := r.Get(ep.ID)
	if !ok {
		t.Fatal("Get should find the added episode")
	}
	if got.Name != "Ana Silva" {
		t.Errorf("Name = %q", got.Name)
	}

	if _, ok := r.Get(uuid.New()); ok {
		t.Error("Get with unknown ID should report not found")
	}
}

func TestAddAllPreservesOrder(t *testing.T) {
	r := repo.NewEpisodeRepository()
	eps := r.AddAll([]model.PatientRecord{record("Ana Silva"), record("Juan Pérez"), record("María López")})
	if len(eps) != 3 || r.Count() != 3 {
		t.Fatalf("AddAll returned %d episodes, Count = %d, want 3/3", len(eps), r.Count())
	}
	list := r.List()
	for i, want := range []string{"Ana Silva", "Juan Pérez", "María López"} {
		if list[i].Name != want {
			t.Errorf("List[%d].Name = %q, want %q", i, list[i].Name, want)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	r := repo.NewEpisodeRepository()
	r.Add(record("Ana Silva"))

	list := r.List()
	list[0].Name = "mutated"
	if got := r.List()[0].Name; got != "Ana Silva" {
		t.Errorf("repository contents changed through List copy: %q", got)
	}
}

func TestReset(t *testing.T) {
	r := repo.NewEpisodeRepository()
	ep := r.Add(record("Ana Silva"))
	r.Reset()
	if r.Count() != 0 {
		t.Errorf("Count after Reset = %d", r.Count())
	}
	if _, ok := r.Get(ep.ID); ok {
		t.Error("Get should miss after Reset")
	}
}

func TestSaveLoadJSON(t *testing.T) {
	r := repo.NewEpisodeRepository()
	r.AddAll([]model.PatientRecord{record("Ana Silva"), record("Juan Pérez")})

	path := filepath.Join(t.TempDir(), "episodes.json")
	if err := r.SaveJSON(path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	loaded := repo.NewEpisodeRepository()
	if err := loaded.LoadJSON(path); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if loaded.Count() != 2 {
		t.Fatalf("Count after load = %d, want 2", loaded.Count())
	}

	orig := r.List()
	for _, ep := range orig {
		got, ok := loaded.Get(ep.ID)
		if !ok {
			t.Fatalf("episode %s lost in round trip", ep.ID)
		}
		if got.Name != ep.Name || got.AdmissionDate != ep.AdmissionDate {
			t.Errorf("episode %s changed in round trip: %+v", ep.ID, got)
		}
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	r := repo.NewEpisodeRepository()
	if err := r.LoadJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConcurrentAdd(t *testing.T) {
	r := repo.NewEpisodeRepository()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Add(record("Ana Silva"))
		}()
	}
	wg.Wait()
	if r.Count() != 20 {
		t.Errorf("Count = %d, want 20", r.Count())
	}
}
