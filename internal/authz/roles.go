package authz

const (
	RoleUser  = 1
	RoleAdmin = 2
)
