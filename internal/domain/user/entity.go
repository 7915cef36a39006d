package user

import "time"

type Role string

const (
	RoleTech       Role = "tech"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
)

// RoleLevels orders roles for approval authorization. Higher value means
// more authority.
var RoleLevels = map[Role]int{
	RoleTech:       1,
	RoleSupervisor: 2,
	RoleManager:    3,
	RoleAdmin:      4,
}

// ApproverFloorLevel is the minimum role level that may approve leave for
// anyone below it without a direct supervisor link.
const ApproverFloorLevel = 3

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role

	// SupervisorID forms the reporting tree. Nil for top-level users.
	SupervisorID *string
	DepartmentID *string

	HireDate   time.Time
	BirthMonth int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanApproveLeaveFor decides whether an actor may approve or reject a leave
// request. Either the actor is the requester's direct supervisor, or their
// role sits at or above the approver floor and strictly above the
// requester's role.
func CanApproveLeaveFor(approverRole Role, approverID string, requesterRole Role, requesterSupervisorID *string) bool {
	if requesterSupervisorID != nil && *requesterSupervisorID == approverID {
		return true
	}

	approverLevel, ok := RoleLevels[approverRole]
	if !ok {
		return false
	}
	requesterLevel := RoleLevels[requesterRole]

	return approverLevel >= ApproverFloorLevel && approverLevel > requesterLevel
}
