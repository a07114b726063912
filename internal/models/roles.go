package models

// Role determines which capabilities a user is granted.
type Role string

const (
	RoleVisitor   Role = "visitor"
	RoleCandidate Role = "candidate"
	RoleGrafico   Role = "grafico"
	RoleAdmin     Role = "admin"
)

// Roles lists the closed set of roles accepted at registration.
var Roles = []Role{RoleVisitor, RoleCandidate, RoleGrafico, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleVisitor, RoleCandidate, RoleGrafico, RoleAdmin:
		return true
	}
	return false
}

// Capabilities is the set of named permissions gating tabs and actions.
type Capabilities struct {
	GenerateProgram bool
	ManageCampaigns bool
	ManagePrograms  bool
	SeeCandidates   bool
}

// Capabilities returns the capability grants for the role.
//
// Candidates and admins get the full set; graficos and visitors can only
// browse candidates. Unknown roles are treated as visitors.
func (r Role) Capabilities() Capabilities {
	switch r {
	case RoleCandidate, RoleAdmin:
		return Capabilities{
			GenerateProgram: true,
			ManageCampaigns: true,
			ManagePrograms:  true,
			SeeCandidates:   true,
		}
	default:
		return Capabilities{SeeCandidates: true}
	}
}
