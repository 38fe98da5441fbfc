package domain

// Session identifies the authenticated account for the duration of a
// login. It is passed explicitly into every handler; there is no
// process-global current user.
type Session struct {
	Login string
	Role  Role
}
