package usecase_test

import (
	"testing"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/usecase"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{complaint.CategoryDogs, complaint.ActionAnimalControl},
		{complaint.CategoryNoise, complaint.ActionCityCouncil},
		{complaint.CategoryCars, complaint.ActionTrafficDept},
		{complaint.CategoryRobbery, complaint.ActionPolice},
		{complaint.CategoryAssault, complaint.ActionPolice},
		{complaint.CategoryUtilities, complaint.ActionUtilityServices},
		{complaint.CategoryCityServices, complaint.ActionMunicipality},
		{complaint.CategoryNeighbor, complaint.ActionNeighborhood},
		{complaint.CategoryUnknown, complaint.ActionDefault},
		{"", complaint.ActionDefault},
		{"not_a_category", complaint.ActionDefault},
	}

	for _, tc := range cases {
		if got := usecase.Route(tc.category); got != tc.want {
			t.Errorf("Route(%q): expected %q, got %q", tc.category, tc.want, got)
		}
		// Same category, same department, every time.
		if again := usecase.Route(tc.category); again != usecase.Route(tc.category) {
			t.Errorf("Route(%q) is not stable", tc.category)
		}
	}
}
