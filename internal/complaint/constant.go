package complaint

// Complaint categories. The scan order used by the classifier is
// defined separately (CategoryScanOrder); this list is the closed set a
// complaint can end up with.
const (
	CategoryNeighbor     = "neighbor"
	CategoryNoise        = "noise"
	CategoryDogs         = "dogs"
	CategoryCars         = "cars"
	CategoryCityServices = "city_services"
	CategoryRobbery      = "robbery"
	CategoryAssault      = "assault"
	CategoryUtilities    = "utilities"

	// CategoryUnknown is the sentinel for unclassifiable complaints,
	// including any model failure.
	CategoryUnknown = "unknown"
)

// CategoryScanOrder is the fixed priority order the classifier scans
// the model output with. The first category name found as a substring
// wins, so this order is a documented tie-break contract: do not
// reorder. Utility subtypes appear individually and normalize to
// CategoryUtilities.
var CategoryScanOrder = []string{
	CategoryNeighbor,
	CategoryNoise,
	CategoryDogs,
	CategoryCars,
	CategoryCityServices,
	CategoryRobbery,
	CategoryAssault,
	CategoryUtilities,
	"internet",
	"electricity",
	"water",
	"phone",
}

// utilitySubtypes normalize to CategoryUtilities.
var utilitySubtypes = map[string]bool{
	"internet":    true,
	"electricity": true,
	"water":       true,
	"phone":       true,
}

// NormalizeCategory maps a scan hit to its canonical category.
func NormalizeCategory(cat string) string {
	if utilitySubtypes[cat] {
		return CategoryUtilities
	}
	return cat
}

// Department action labels a category routes to.
const (
	ActionAnimalControl   = "Animal Control"
	ActionCityCouncil     = "City Council"
	ActionTrafficDept     = "Traffic Dept"
	ActionPolice          = "Police"
	ActionUtilityServices = "Utility Services"
	ActionMunicipality    = "Municipality"
	ActionNeighborhood    = "Neighborhood Committee"

	// ActionDefault is returned for every category without an explicit
	// route, CategoryUnknown included.
	ActionDefault = "General Support"
)

// Reply generation modes.
const (
	ReplyModeModel    = "model"
	ReplyModeTemplate = "template"
)
