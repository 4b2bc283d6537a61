package hotel

const (
	operationAddRoom         = "add_room"
	operationBookRoom        = "book_room"
	operationCancelBooking   = "cancel_booking"
	operationMarkMaintenance = "mark_maintenance"
	operationLogMaintenance  = "log_maintenance"
	operationAddService      = "add_service"
	operationInvoice         = "invoice"
	operationAddStaff        = "add_staff"
	operationRemoveStaff     = "remove_staff"
	operationFeedback        = "submit_feedback"

	operationStatusOK    = "ok"
	operationStatusError = "error"

	defaultRoomLimit  = 100
	defaultGuestLimit = 100
	defaultStaffLimit = 50
	defaultStayNights = 3
)
