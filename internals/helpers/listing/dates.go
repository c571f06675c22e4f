// Package listing berisi util tanggal untuk masa tayang listing test:
// hitung end_date dari start_date + durasi, sisa hari untuk countdown badge,
// dan klasifikasi tier badge.
package listing

import (
	"math"
	"time"

	"appboard_backend/internals/constants"
)

const ISODate = "2006-01-02"

// Tier badge countdown (dipakai board publik & dashboard)
const (
	TierExpired  = "expired"
	TierCritical = "critical"
	TierWarning  = "warning"
	TierHealthy  = "healthy"
)

// ComputeEndDate menambahkan durationDays hari kalender ke startDate (ISO).
// Aritmetika tanggal murni — jam/timezone tidak berpengaruh.
func ComputeEndDate(startDate string, durationDays int) (string, error) {
	start, err := time.Parse(ISODate, startDate)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, durationDays).Format(ISODate), nil
}

// DefaultEndDate = start + ListingDurationDays (14 hari).
func DefaultEndDate(startDate string) (string, error) {
	return ComputeEndDate(startDate, constants.ListingDurationDays)
}

// DaysRemaining menghitung ceil((end@midnight - today@midnight) / 1 hari).
// Kedua sisi di-nol-kan dulu supaya tidak ada off-by-one dari jam/timezone.
func DaysRemaining(endDate string, now time.Time) (int, error) {
	end, err := time.Parse(ISODate, endDate)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endMid := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	diff := endMid.Sub(today).Hours() / 24
	return int(math.Ceil(diff)), nil
}

// BadgeTier memetakan sisa hari ke tier badge:
// <0 expired, 0–4 critical, 5–9 warning, ≥10 healthy.
func BadgeTier(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return TierExpired
	case daysRemaining <= 4:
		return TierCritical
	case daysRemaining <= 9:
		return TierWarning
	default:
		return TierHealthy
	}
}

// ExpiringSoon: klasifikasi ringkasan admin/dashboard (bukan tier badge):
// 0 ≤ sisa ≤ 5 dan status approved.
func ExpiringSoon(daysRemaining int, status string) bool {
	return status == constants.StatusApproved && daysRemaining >= 0 && daysRemaining <= 5
}

// Expired: end_date sudah lewat hari ini. Tidak pernah mengubah status —
// hanya bucket tampilan.
func Expired(daysRemaining int) bool {
	return daysRemaining < 0
}
