package models

type CustomerType string

const (
	CustomerIndividual CustomerType = "Bireysel"
	CustomerCorporate  CustomerType = "Kurumsal"
)

type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "Active"
	PolicyPotential PolicyStatus = "Potential"
	PolicyCancelled PolicyStatus = "Cancelled"
	// PolicyExpired is never stored; it is derived from end_date at read time.
	PolicyExpired PolicyStatus = "Expired"
)

// PolicyBranch is the coarse insurance branch a free-text policy type label
// classifies into when no product can be resolved.
type PolicyBranch string

const (
	BranchTraffic   PolicyBranch = "Trafik"
	BranchCasco     PolicyBranch = "Kasko"
	BranchDwelling  PolicyBranch = "Konut"
	BranchWorkplace PolicyBranch = "İşyeri"
	BranchHealth    PolicyBranch = "Sağlık"
	BranchTravel    PolicyBranch = "Seyahat"
	BranchOther     PolicyBranch = "Diğer"
)

type AssetType string

const (
	AssetVehicle   AssetType = "Araç"
	AssetDwelling  AssetType = "Konut"
	AssetWorkplace AssetType = "İşyeri"
)

// CoarseAssetType maps a policy branch to the insurable asset class it
// implies. Branches without a physical asset return ok=false.
func CoarseAssetType(branch PolicyBranch) (AssetType, bool) {
	switch branch {
	case BranchTraffic, BranchCasco:
		return AssetVehicle, true
	case BranchDwelling:
		return AssetDwelling, true
	default:
		return "", false
	}
}
