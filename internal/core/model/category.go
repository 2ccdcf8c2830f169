package model

// Category is the semantic grouping of a catalog entry. It is independent of
// the physical folder the asset lives in.
type Category string

const (
	CategoryCompute      Category = "compute"
	CategoryContainers   Category = "containers"
	CategoryNetwork      Category = "network"
	CategoryStorage      Category = "storage"
	CategoryDatabase     Category = "database"
	CategoryWeb          Category = "web"
	CategorySecurity     Category = "security"
	CategoryIdentity     Category = "identity"
	CategoryIntegration  Category = "integration"
	CategoryAI           Category = "ai"
	CategoryAnalytics    Category = "analytics"
	CategoryDevOps       Category = "devops"
	CategoryManagement   Category = "management"
	CategoryIoT          Category = "iot"
	CategoryMixedReality Category = "mixed_reality"
	CategoryOther        Category = "other"
	CategoryGeneral      Category = "general"
)

// Categories is the fixed display order used when sorting diff output.
var Categories = []Category{
	CategoryCompute,
	CategoryContainers,
	CategoryNetwork,
	CategoryStorage,
	CategoryDatabase,
	CategoryWeb,
	CategorySecurity,
	CategoryIdentity,
	CategoryIntegration,
	CategoryAI,
	CategoryAnalytics,
	CategoryDevOps,
	CategoryManagement,
	CategoryIoT,
	CategoryMixedReality,
	CategoryOther,
	CategoryGeneral,
}

var categoryRanks = func() map[Category]int {
	ranks := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		ranks[c] = i
	}
	return ranks
}()

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryRanks[c]
	return ok
}

// Rank returns the category's position in the fixed ordering. Unknown
// categories sort after all known ones.
func (c Category) Rank() int {
	if rank, ok := categoryRanks[c]; ok {
		return rank
	}
	return len(Categories)
}
