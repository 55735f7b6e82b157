package domain

const RoleAdmin = "Admin"

type Role struct {
	ID   int64
	Name string
}

type Profile struct {
	FirstName string
	LastName  string
	Country   string
	AvatarURL string
}

// User is an immutable snapshot of the authenticated account. Updates replace
// the whole value, never mutate fields in place.
type User struct {
	ID       int64
	Email    string
	Username string
	Roles    []Role
	Profile  *Profile
}

func (u User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}

	return false
}

func (u User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Permission is a coarse capability derived from roles; the CLI uses it to
// gate admin-only commands.
type Permission string

const (
	PermissionViewMarket     Permission = "market:view"
	PermissionManageListings Permission = "listings:manage"
	PermissionAdminPanel     Permission = "admin:panel"
)

func (u User) Permissions() []Permission {
	perms := []Permission{PermissionViewMarket}

	if u.HasRole("Seller") || u.IsAdmin() {
		perms = append(perms, PermissionManageListings)
	}
	if u.IsAdmin() {
		perms = append(perms, PermissionAdminPanel)
	}

	return perms
}

func (u User) Can(p Permission) bool {
	for _, perm := range u.Permissions() {
		if perm == p {
			return true
		}
	}

	return false
}

// ProfileCompletion reports how far the account profile has been filled in.
// It is fetched best-effort after sign-in.
type ProfileCompletion struct {
	Percent       float64
	MissingFields []string
}

func (p ProfileCompletion) Complete() bool {
	return p.Percent >= 100
}
