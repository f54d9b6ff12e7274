package application

// Authorize decides whether the caller may act on a resource owned by
// ownerID. The check is an exact, case-sensitive match: no roles, no
// hierarchy, no admin override. Callers must resolve resource existence
// first so that an absent resource reports not-found, not forbidden.
func Authorize(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
