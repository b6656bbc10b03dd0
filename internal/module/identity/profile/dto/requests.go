package dto

// SignUpRequest optionally carries the IANA timezone the new profile
// should start with; an empty value defaults to UTC.
type SignUpRequest struct {
	Timezone string `json:"timezone" binding:"omitempty"`
}

// UpdateTimezoneRequest sets the profile's IANA timezone.
type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required"`
}
