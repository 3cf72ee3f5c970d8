// models/service_type.go
package models

// Treatments offered at the spa, in the order the booking form lists them.
var Treatments = []string{
	"Swedish Massage",
	"Shiatsu Massage",
	"Hot Stone Therapy",
	"Ventosa Massage",
	"Special Signature",
	"Foot Massage",
}

// Durations a treatment can be booked for.
var Durations = []string{
	"30mins",
	"60mins",
	"90mins",
	"120mins",
}

// Catalog is the set of selectable values a booking client renders.
type Catalog struct {
	Treatments []string `json:"treatments"`
	Durations  []string `json:"durations"`
	TimeSlots  []string `json:"timeSlots"`
}

func IsTreatment(s string) bool { return contains(Treatments, s) }

func IsDuration(s string) bool { return contains(Durations, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
