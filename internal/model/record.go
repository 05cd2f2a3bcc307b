package model

// RecordID uniquely identifies a player record across the system.
// It is the Telegram ID assigned by the game service and is the stable
// key for selection and manual ordering.
type RecordID string

// Role is a player's role on the game service. The set below is what the
// service hands out today; unknown values pass through untouched so the
// console keeps working when the service grows a new role.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RolePlayer    Role = "PLAYER"
)

// Known reports whether the role is one of the recognized constants.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleModerator, RolePlayer:
		return true
	}
	return false
}

// AssignableRoles are the roles an operator may set via the console.
// ADMIN is granted out-of-band and is not assignable here.
var AssignableRoles = []Role{RolePlayer, RoleModerator}

// PlayerRecord is one player account as reported by the game service.
// The console never constructs these locally; they arrive from fetches
// and are replaced wholesale on every refresh.
type PlayerRecord struct {
	ID        RecordID `json:"id"`
	Name      string   `json:"name"`
	PlayMoney float64  `json:"playMoney"`
	RealMoney float64  `json:"realMoney"`
	Role      Role     `json:"role"`
}
