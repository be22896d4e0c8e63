package reservation

import "lease-engine/internal/domain/interval"

// IsAdmin decides whether candidate may administer a resource for window.
// changes are the CREATED or ACTIVE owner changes of that resource.
//
//  1. A window straddling any change is denied.
//  2. More than one change containing the window is an inconsistent state and
//     is denied.
//  3. A single containing change grants authority to its new owner.
//  4. Otherwise the resource's default admin decides.
func IsAdmin(window interval.Interval, changes []Transfer, defaultAdmin, candidate string) bool {
	for _, c := range changes {
		if interval.Straddles(window, c.Slot) {
			return false
		}
	}

	var holder *Transfer
	for i := range changes {
		if !interval.Within(window, changes[i].Slot) {
			continue
		}
		if holder != nil {
			return false
		}
		holder = &changes[i]
	}

	if holder != nil {
		return candidate == holder.ToOwnerID
	}
	return candidate == defaultAdmin
}
