package usecase

import "smartcity-complaints/internal/complaint"

// routes is the static category → department table.
var routes = map[string]string{
	complaint.CategoryDogs:         complaint.ActionAnimalControl,
	complaint.CategoryNoise:        complaint.ActionCityCouncil,
	complaint.CategoryCars:         complaint.ActionTrafficDept,
	complaint.CategoryRobbery:      complaint.ActionPolice,
	complaint.CategoryAssault:      complaint.ActionPolice,
	complaint.CategoryUtilities:    complaint.ActionUtilityServices,
	complaint.CategoryCityServices: complaint.ActionMunicipality,
	complaint.CategoryNeighbor:     complaint.ActionNeighborhood,
}

// Route maps a category to its responsible department label. Pure and
// total: any category without an explicit entry, CategoryUnknown
// included, routes to ActionDefault.
func Route(category string) string {
	if action, ok := routes[category]; ok {
		return action
	}
	return complaint.ActionDefault
}
