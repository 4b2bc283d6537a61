package hotel

import "context"

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing hotel operation.
type OperationLog struct {
	Operation string
	Guest     GuestName
	Phone     Phone
	Room      RoomNumber
	Amount    float64
	Status    string
	Error     error
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		service.logger = logger
	}
}

// WithClock overrides the wall clock used for booking history timestamps.
func WithClock(now func() int64) ServiceOption {
	return func(service *Service) {
		if now != nil {
			service.nowFn = now
		}
	}
}

// WithRoomLimit caps the room collection.
func WithRoomLimit(limit int) ServiceOption {
	return func(service *Service) {
		if limit > 0 {
			service.roomLimit = limit
		}
	}
}

// WithGuestLimit caps the booking collection.
func WithGuestLimit(limit int) ServiceOption {
	return func(service *Service) {
		if limit > 0 {
			service.guestLimit = limit
		}
	}
}

// WithStaffLimit caps the staff roster.
func WithStaffLimit(limit int) ServiceOption {
	return func(service *Service) {
		if limit > 0 {
			service.staffLimit = limit
		}
	}
}

// WithStayNights sets the flat nightly count used by stay bills. Bills are
// charged at a fixed duration; check-in and check-out strings are never
// interpreted as dates.
func WithStayNights(nights int) ServiceOption {
	return func(service *Service) {
		if nights > 0 {
			service.stayNights = nights
		}
	}
}
