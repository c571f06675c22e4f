// Package service: aturan lifecycle status & visibilitas app listing.
//
// Status: pending (awal) → approved/rejected; approved ⇄ rejected
// (revoke/reinstate). Tidak ada status "deleted" — hapus adalah operasi
// destruktif terpisah. Expiry (end_date lewat) tidak pernah mengubah status,
// hanya bucket tampilan.
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"appboard_backend/internals/constants"
	appModel "appboard_backend/internals/features/apps/model"
)

var allowedTransitions = map[string][]string{
	constants.StatusPending:  {constants.StatusApproved, constants.StatusRejected},
	constants.StatusApproved: {constants.StatusRejected},
	constants.StatusRejected: {constants.StatusApproved},
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition menerapkan transisi status pada model. Hanya dipanggil dari
// jalur admin — role gate ada di middleware, bukan di sini.
func Transition(m *appModel.AppModel, to string) error {
	if !constants.IsValidStatus(to) {
		return fiber.NewError(fiber.StatusBadRequest, "status tidak valid")
	}
	if !CanTransition(m.Status, to) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("transisi status %s → %s tidak diizinkan", m.Status, to))
	}
	m.Status = to
	return nil
}

// IsPubliclyVisible: predikat board publik — approved ATAU listing test
// (listing test tampil tanpa menunggu moderasi).
func IsPubliclyVisible(m *appModel.AppModel) bool {
	return m.Status == constants.StatusApproved || m.SubmissionType == constants.SubmissionTest
}
