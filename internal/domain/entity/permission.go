package entity

// PermissionStatus mirrors the OS/SDK location permission states.
type PermissionStatus string

const (
	PermissionUnknown           PermissionStatus = "unknown"
	PermissionGrantedForeground PermissionStatus = "granted_foreground"
	PermissionGrantedBackground PermissionStatus = "granted_background"
	PermissionDenied            PermissionStatus = "denied"
	PermissionUnavailable       PermissionStatus = "unavailable"
)

// IsValid checks if the PermissionStatus is a valid value.
func (p PermissionStatus) IsValid() bool {
	switch p {
	case PermissionUnknown, PermissionGrantedForeground, PermissionGrantedBackground,
		PermissionDenied, PermissionUnavailable:
		return true
	default:
		return false
	}
}

// IsGranted reports whether at least foreground location access was granted.
func (p PermissionStatus) IsGranted() bool {
	return p == PermissionGrantedForeground || p == PermissionGrantedBackground
}

// AllowsBackground reports whether location access is granted while backgrounded.
func (p PermissionStatus) AllowsBackground() bool {
	return p == PermissionGrantedBackground
}
