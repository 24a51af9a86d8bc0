package fractalsdk

// policy is the local precondition of an endpoint.
type policy func(*AccessToken) bool

func admin(t *AccessToken) bool  { return t.IsAdmin() }
func public(t *AccessToken) bool { return t.IsPublic() }

// anyUser allows any token bound to a user.
func anyUser(t *AccessToken) bool {
	_, ok := t.UserID()
	return ok
}

// user allows only the token of the given user.
func user(id uint64) policy {
	return func(t *AccessToken) bool { return t.IsUser(id) }
}

func either(policies ...policy) policy {
	return func(t *AccessToken) bool {
		for _, p := range policies {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// authorize runs the local check for op. It never touches the network.
func authorize(op string, t *AccessToken, allowed policy) error {
	if t == nil || !allowed(t) {
		return &AuthorizationError{Operation: op, Err: ErrForbiddenScope}
	}
	if t.HasExpired() {
		return &AuthorizationError{Operation: op, Err: ErrTokenExpired}
	}
	return nil
}
