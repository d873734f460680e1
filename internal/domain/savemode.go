package domain

// SaveMode distinguishes user-initiated writes from the engine's own
// derived-field corrections, so repositories can skip secondary validation
// when the write is an internal patch rather than an edit.
type SaveMode int

const (
	SaveModeUserEdit SaveMode = iota
	SaveModeReconciliation
)

func (m SaveMode) String() string {
	if m == SaveModeReconciliation {
		return "reconciliation"
	}
	return "user_edit"
}
