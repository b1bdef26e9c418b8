package booking

// Status is the closed set of booking states. A booking is created Pending,
// and only Pending bookings may move on: Pending→Selesai on checkout,
// Pending→Batal on cancellation. Selesai and Batal are terminal.
type Status string

const (
	StatusPending Status = "Pending"
	StatusSelesai Status = "Selesai"
	StatusBatal   Status = "Batal"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSelesai, StatusBatal:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusSelesai || s == StatusBatal
}

func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusSelesai || next == StatusBatal)
}
