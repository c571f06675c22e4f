package constants

// Status moderasi app listing
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Jenis submission
const (
	SubmissionLive = "live"
	SubmissionTest = "test"
)

// Platform target
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Durasi tayang listing test (hari) — end_date = start_date + durasi
const ListingDurationDays = 14

var (
	AllStatuses = []string{
		StatusPending,
		StatusApproved,
		StatusRejected,
	}

	AllSubmissionTypes = []string{
		SubmissionLive,
		SubmissionTest,
	}

	AllPlatforms = []string{
		PlatformAndroid,
		PlatformIOS,
	}
)

func IsValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidSubmissionType(s string) bool {
	return s == SubmissionLive || s == SubmissionTest
}

func IsValidPlatform(s string) bool {
	return s == PlatformAndroid || s == PlatformIOS
}
