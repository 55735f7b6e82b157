package domain

// Status is the canonical vocabulary shared by listings, offers, orders and
// conversations. The upstream web client carried two diverging copies of this
// mapping; this is the consolidated superset.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusExpired   Status = "expired"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCountered Status = "countered"
	StatusWithdrawn Status = "withdrawn"
	StatusInEscrow  Status = "in_escrow"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDisputed  Status = "disputed"
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
)

var statusLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusPending:   "Pending review",
	StatusActive:    "Active",
	StatusSold:      "Sold",
	StatusExpired:   "Expired",
	StatusAccepted:  "Accepted",
	StatusRejected:  "Rejected",
	StatusCountered: "Countered",
	StatusWithdrawn: "Withdrawn",
	StatusInEscrow:  "In escrow",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusDisputed:  "Disputed",
	StatusOpen:      "Open",
	StatusClosed:    "Closed",
}

// ANSI 256 color codes, consumed by the terminal renderer.
var statusColors = map[Status]string{
	StatusDraft:     "244",
	StatusPending:   "214",
	StatusActive:    "42",
	StatusSold:      "39",
	StatusExpired:   "241",
	StatusAccepted:  "42",
	StatusRejected:  "203",
	StatusCountered: "214",
	StatusWithdrawn: "244",
	StatusInEscrow:  "214",
	StatusCompleted: "42",
	StatusCancelled: "241",
	StatusDisputed:  "203",
	StatusOpen:      "42",
	StatusClosed:    "241",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return string(s)
}

func (s Status) Color() string {
	if color, ok := statusColors[s]; ok {
		return color
	}

	return "252"
}
