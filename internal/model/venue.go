package model

// Venue is a championship site. MapObjectKey points at the venue map image
// in object storage when one has been uploaded.
type Venue struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Capacity          int      `json:"capacity"`
	Facilities        []string `json:"facilities"`
	AccessInfo        string   `json:"accessInfo,omitempty"`
	EmergencyContacts []string `json:"emergencyContacts,omitempty"`
	MapObjectKey      string   `json:"-"`
}
