package guard

// Role is a named access level with a total order.
type Role string

// The closed role set, highest rank first.
const (
	RoleAccountOwner Role = "account_owner"
	RoleAdmin        Role = "admin"
	RoleUser         Role = "user"
)

// roleRanks assigns each role its integer rank. Names outside the closed set
// rank 0 and therefore grant nothing.
var roleRanks = map[Role]int{
	RoleAccountOwner: 3,
	RoleAdmin:        2,
	RoleUser:         1,
}

// Rank returns the integer rank of a role name; unknown names rank 0.
func Rank(r Role) int {
	return roleRanks[r]
}

// HasAccess reports whether userRole satisfies requiredRole.
func HasAccess(userRole, requiredRole Role) bool {
	return Rank(userRole) >= Rank(requiredRole)
}
