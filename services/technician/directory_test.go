package technician

import (
	"context"
	"fmt"
	"testing"
	"time"

	"garagedesk/models"
)

type memRoster struct {
	techs []models.Technician
}

func (r *memRoster) List(ctx context.Context) ([]models.Technician, error) { return r.techs, nil }

func (r *memRoster) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	for _, t := range r.techs {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("technician not found")
}

func (r *memRoster) GetByName(ctx context.Context, name string) (*models.Technician, error) {
	for _, t := range r.techs {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("technician not found")
}

func (r *memRoster) Create(ctx context.Context, tech *models.Technician) error {
	r.techs = append(r.techs, *tech)
	return nil
}

func (r *memRoster) Update(ctx context.Context, id string, tech *models.Technician) error {
	for i, t := range r.techs {
		if t.ID == id {
			r.techs[i] = *tech
			return nil
		}
	}
	return fmt.Errorf("technician not found")
}

func (r *memRoster) Delete(ctx context.Context, id string) error {
	for i, t := range r.techs {
		if t.ID == id {
			r.techs = append(r.techs[:i], r.techs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("technician not found")
}

func testDirectory() *Directory {
	roster := &memRoster{techs: []models.Technician{
		{ID: "t-1", Name: "Paddy", Order: 1},
		{ID: "t-2", Name: "Sean", Order: 2},
	}}
	return NewDirectory(roster, nil, time.Minute)
}

func TestResolve(t *testing.T) {
	d := testDirectory()
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     models.TechnicianRef
		want    models.TechnicianRef
		wantErr bool
	}{
		{
			name: "id passes through with canonical name",
			ref:  models.TechnicianRef{ID: "t-2"},
			want: models.TechnicianRef{ID: "t-2", Name: "Sean"},
		},
		{
			name: "legacy name upgrades to id",
			ref:  models.TechnicianRef{Name: "Paddy"},
			want: models.TechnicianRef{ID: "t-1", Name: "Paddy"},
		},
		{
			name: "unknown name survives for pre-migration records",
			ref:  models.TechnicianRef{Name: "Departed"},
			want: models.TechnicianRef{Name: "Departed"},
		},
		{
			name:    "unknown id is rejected",
			ref:     models.TechnicianRef{ID: "t-99"},
			wantErr: true,
		},
		{
			name:    "empty reference is rejected",
			ref:     models.TechnicianRef{},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.Resolve(ctx, tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error, got none")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCreateAssignsID(t *testing.T) {
	d := testDirectory()
	tech := models.Technician{Name: "Niamh", Order: 3}
	if err := d.Create(context.Background(), &tech); err != nil {
		t.Fatal(err)
	}
	if tech.ID == "" {
		t.Error("created technician must get an id")
	}

	resolved, err := d.Resolve(context.Background(), models.TechnicianRef{Name: "Niamh"})
	if err != nil {
		t.Fatal(err)
	}
	if resolved.ID != tech.ID {
		t.Errorf("resolve should find the new technician, got %+v", resolved)
	}
}
