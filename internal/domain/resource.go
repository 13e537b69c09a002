package domain

import "fmt"

// ResourceType bookable resource category
type ResourceType string

const (
	ResourceRoom        ResourceType = "room"
	ResourceEventSpace  ResourceType = "event_space"
	ResourceTable       ResourceType = "table"
	ResourceSpa         ResourceType = "spa"
	ResourceExperience  ResourceType = "experience"
	ResourceRoomService ResourceType = "room_service"
	ResourceTransfer    ResourceType = "transfer"
)

// AllResourceTypes lists every resource type in display order
var AllResourceTypes = []ResourceType{
	ResourceRoom,
	ResourceEventSpace,
	ResourceTable,
	ResourceSpa,
	ResourceExperience,
	ResourceRoomService,
	ResourceTransfer,
}

// ParseResourceType validates a resource type coming from a URL or a request body
func ParseResourceType(s string) (ResourceType, error) {
	rt := ResourceType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownResourceType, s)
	}
	return rt, nil
}

// IsValid returns true if the resource type is known
func (r ResourceType) IsValid() bool {
	for _, known := range AllResourceTypes {
		if r == known {
			return true
		}
	}
	return false
}

// IsDateBearing returns true if bookings of this type are made for a calendar date
func (r ResourceType) IsDateBearing() bool {
	return r != ResourceRoomService
}

// IsRequestOnly returns true if the total is not committed at creation time
// and is set later by staff
func (r ResourceType) IsRequestOnly() bool {
	return r == ResourceEventSpace
}

func (r ResourceType) String() string {
	return string(r)
}
