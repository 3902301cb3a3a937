package domain

// EntityStatus é o valor de um dos dois eixos de status acompanhados
// (status principal ou status secundário de aprovação).
type EntityStatus string

const (
	StatusEnabled EntityStatus = "ENABLED"
	StatusPaused  EntityStatus = "PAUSED"
	StatusRemoved EntityStatus = "REMOVED"

	ApprovalApproved        EntityStatus = "APPROVED"
	ApprovalApprovedLimited EntityStatus = "APPROVED_LIMITED"
	ApprovalDisapproved     EntityStatus = "DISAPPROVED"
	ApprovalUnderReview     EntityStatus = "UNDER_REVIEW"

	// StatusUnknown é o valor normalizado quando a API não informa o eixo.
	StatusUnknown EntityStatus = "UNKNOWN"
)

// NotApplicable é o literal gravado no log quando um campo não se aplica:
// status anterior de uma entidade nova, ou eixo secundário de um tipo
// de entidade que não o possui.
const NotApplicable = "N/A"

// Fallbacks usados na composição do changeType quando o novo valor não
// pertence ao conjunto enumerado do eixo.
const (
	StatusChangedFallback   = "STATUS_CHANGED"
	ApprovalChangedFallback = "APPROVAL_CHANGED"
)
