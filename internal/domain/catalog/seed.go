package catalog

// SeedDoctors returns the demo catalog. Order matters: the catalog's
// insertion order is the order every listing and filter result preserves.
func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID:             "doctor-1",
			Name:           "Dr. Sarah Johnson",
			Specialty:      "Cardiology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.8,
			ReviewCount:    124,
			Location:       "New York Medical Center",
			AvailableSlots: 5,
			Tags:           []string{"Heart Specialist", "Preventive Care"},
		},
		{
			ID:             "doctor-2",
			Name:           "Dr. Michael Chen",
			Specialty:      "Dermatology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.7,
			ReviewCount:    98,
			Location:       "Skin Health Clinic",
			AvailableSlots: 3,
			Tags:           []string{"Skin Cancer", "Cosmetic Dermatology"},
		},
		{
			ID:             "doctor-3",
			Name:           "Dr. Emily Rodriguez",
			Specialty:      "Pediatrics",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.9,
			ReviewCount:    156,
			Location:       "Children's Wellness Center",
			AvailableSlots: 0,
			Tags:           []string{"Child Development", "Vaccinations"},
		},
		{
			ID:             "doctor-4",
			Name:           "Dr. James Wilson",
			Specialty:      "Orthopedics",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.6,
			ReviewCount:    87,
			Location:       "Joint & Spine Institute",
			AvailableSlots: 2,
			Tags:           []string{"Sports Medicine", "Joint Replacement"},
		},
		{
			ID:             "doctor-5",
			Name:           "Dr. Aisha Patel",
			Specialty:      "Neurology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.9,
			ReviewCount:    112,
			Location:       "Brain & Nerve Center",
			AvailableSlots: 4,
			Tags:           []string{"Headache Specialist", "Stroke Care"},
		},
		{
			ID:             "doctor-6",
			Name:           "Dr. Robert Kim",
			Specialty:      "Psychiatry",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.7,
			ReviewCount:    76,
			Location:       "Mental Health Associates",
			AvailableSlots: 6,
			Tags:           []string{"Anxiety", "Depression"},
		},
		{
			ID:             "doctor-7",
			Name:           "Dr. Lisa Thompson",
			Specialty:      "Gynecology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.8,
			ReviewCount:    143,
			Location:       "Women's Health Clinic",
			AvailableSlots: 0,
			Tags:           []string{"Prenatal Care", "Women's Health"},
		},
		{
			ID:             "doctor-8",
			Name:           "Dr. David Martinez",
			Specialty:      "Ophthalmology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.5,
			ReviewCount:    92,
			Location:       "Vision Care Center",
			AvailableSlots: 3,
			Tags:           []string{"Cataract Surgery", "Glaucoma"},
		},
		{
			ID:             "doctor-9",
			Name:           "Dr. Jennifer Lee",
			Specialty:      "Endocrinology",
			Photo:          "/placeholder.svg?height=200&width=200",
			Rating:         4.6,
			ReviewCount:    68,
			Location:       "Diabetes & Hormone Center",
			AvailableSlots: 4,
			Tags:           []string{"Diabetes", "Thyroid Disorders"},
		},
	}
}
