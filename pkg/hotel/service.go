package hotel

import (
	"context"
	"fmt"
	"time"
)

// Service owns the in-memory room and booking collections and the revenue
// totals for the process lifetime. Every structural mutation rewrites the
// affected resources through the Store before the operation returns, so the
// on-disk state always reflects the last completed operation.
type Service struct {
	store   Store
	logbook Logbook
	logger  OperationLogger
	nowFn   func() int64

	roomLimit  int
	guestLimit int
	staffLimit int
	stayNights int

	rooms    []Room
	bookings []Booking
	staff    []StaffMember
	history  []BookingEvent

	roomRevenue    float64
	serviceRevenue float64
}

// NewService wires a Service. Call Load before the first operation.
func NewService(store Store, logbook Logbook, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if logbook == nil {
		return nil, fmt.Errorf("%w: logbook dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:      store,
		logbook:    logbook,
		nowFn:      func() int64 { return time.Now().UTC().Unix() },
		roomLimit:  defaultRoomLimit,
		guestLimit: defaultGuestLimit,
		staffLimit: defaultStaffLimit,
		stayNights: defaultStayNights,
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// Load replaces the in-memory collections with the persisted snapshot.
// A missing resource loads as an empty collection; that is a first run.
func (service *Service) Load(ctx context.Context) error {
	state, err := service.store.Load(ctx)
	if err != nil {
		return err
	}
	service.rooms = state.Rooms
	service.bookings = state.Bookings
	service.staff = state.Staff
	service.roomRevenue = state.Revenue.Room
	service.serviceRevenue = state.Revenue.Service
	service.history = service.history[:0]
	return nil
}

// Flush rewrites every resource from the current in-memory state.
func (service *Service) Flush(ctx context.Context) error {
	if err := service.store.SaveRooms(ctx, service.rooms); err != nil {
		return err
	}
	if err := service.store.SaveBookings(ctx, service.bookings); err != nil {
		return err
	}
	if err := service.store.SaveStaff(ctx, service.staff); err != nil {
		return err
	}
	return service.store.SaveRevenue(ctx, service.Revenue())
}

// AddRoom inserts a new room, available and not under maintenance. Room
// numbers are a permanent key space: once used, a number is never accepted
// again for the lifetime of the store.
func (service *Service) AddRoom(ctx context.Context, room Room) error {
	operationError := service.addRoom(ctx, room)
	service.logOperation(ctx, OperationLog{
		Operation: operationAddRoom,
		Room:      room.Number,
		Amount:    room.Price.Float64(),
		Error:     operationError,
	})
	return operationError
}

func (service *Service) addRoom(ctx context.Context, room Room) error {
	if len(service.rooms) >= service.roomLimit {
		return fmt.Errorf("%w: room limit %d reached", ErrCapacityExceeded, service.roomLimit)
	}
	for _, existing := range service.rooms {
		if existing.Number == room.Number {
			return fmt.Errorf("%w: %d", ErrDuplicateRoomNumber, room.Number.Int())
		}
	}
	service.rooms = append(service.rooms, room)
	if err := service.store.SaveRooms(ctx, service.rooms); err != nil {
		service.rooms = service.rooms[:len(service.rooms)-1]
		return err
	}
	return nil
}

// Rooms returns the room collection in insertion order.
func (service *Service) Rooms() []Room {
	rooms := make([]Room, len(service.rooms))
	copy(rooms, service.rooms)
	return rooms
}

// RoomByNumber scans for a room by its number.
func (service *Service) RoomByNumber(number RoomNumber) (Room, error) {
	index := service.roomIndex(number)
	if index < 0 {
		return Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number.Int())
	}
	return service.rooms[index], nil
}

// RoomsByType returns every room carrying the given type label, in
// insertion order.
func (service *Service) RoomsByType(roomType RoomType) []Room {
	var matches []Room
	for _, room := range service.rooms {
		if room.Type == roomType {
			matches = append(matches, room)
		}
	}
	return matches
}

// RoomsByPriceRange returns every room priced within [min, max] inclusive.
func (service *Service) RoomsByPriceRange(min Price, max Price) []Room {
	var matches []Room
	for _, room := range service.rooms {
		if room.Price >= min && room.Price <= max {
			matches = append(matches, room)
		}
	}
	return matches
}

// BookRoom reserves an available room for a guest. The room flips to
// unavailable, the booking joins the collection and the booking-order log,
// and both resources persist before returning.
func (service *Service) BookRoom(ctx context.Context, booking Booking) error {
	operationError := service.bookRoom(ctx, booking)
	service.logOperation(ctx, OperationLog{
		Operation: operationBookRoom,
		Guest:     booking.Guest,
		Phone:     booking.Phone,
		Room:      booking.Room,
		Error:     operationError,
	})
	return operationError
}

func (service *Service) bookRoom(ctx context.Context, booking Booking) error {
	index := service.roomIndex(booking.Room)
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, booking.Room.Int())
	}
	if !service.rooms[index].Available {
		return fmt.Errorf("%w: %d", ErrRoomUnavailable, booking.Room.Int())
	}
	if len(service.bookings) >= service.guestLimit {
		return fmt.Errorf("%w: booking limit %d reached", ErrCapacityExceeded, service.guestLimit)
	}
	service.rooms[index].Available = false
	service.bookings = append(service.bookings, booking)
	if err := service.saveRoomsAndBookings(ctx); err != nil {
		service.rooms[index].Available = true
		service.bookings = service.bookings[:len(service.bookings)-1]
		return err
	}
	service.history = append(service.history, BookingEvent{
		Guest:         booking.Guest,
		Room:          booking.Room,
		BookedUnixUTC: service.nowFn(),
	})
	return nil
}

// CancelBooking removes the first booking whose guest name matches and frees
// the room, unless the room is under maintenance, in which case it stays
// unavailable. Known limitation: when two guests share a name the first
// booking wins, which may not be the intended one.
func (service *Service) CancelBooking(ctx context.Context, guest GuestName) error {
	operationError := service.cancelBooking(ctx, guest)
	service.logOperation(ctx, OperationLog{
		Operation: operationCancelBooking,
		Guest:     guest,
		Error:     operationError,
	})
	return operationError
}

func (service *Service) cancelBooking(ctx context.Context, guest GuestName) error {
	bookingIndex := -1
	for index, booking := range service.bookings {
		if booking.Guest == guest {
			bookingIndex = index
			break
		}
	}
	if bookingIndex < 0 {
		return fmt.Errorf("%w: guest %s", ErrBookingNotFound, guest.String())
	}
	previousRooms := service.snapshotRooms()
	previousBookings := service.snapshotBookings()

	roomIndex := service.roomIndex(service.bookings[bookingIndex].Room)
	if roomIndex >= 0 && !service.rooms[roomIndex].UnderMaintenance {
		service.rooms[roomIndex].Available = true
	}
	service.bookings = append(service.bookings[:bookingIndex], service.bookings[bookingIndex+1:]...)
	if err := service.saveRoomsAndBookings(ctx); err != nil {
		service.rooms = previousRooms
		service.bookings = previousBookings
		return err
	}
	return nil
}

// Bookings returns the active booking collection in insertion order.
func (service *Service) Bookings() []Booking {
	return service.snapshotBookings()
}

// GuestByName scans for the first booking with a matching guest name. Like
// cancellation, the first match wins when guests share a name.
func (service *Service) GuestByName(guest GuestName) (Booking, error) {
	for _, booking := range service.bookings {
		if booking.Guest == guest {
			return booking, nil
		}
	}
	return Booking{}, fmt.Errorf("%w: guest %s", ErrBookingNotFound, guest.String())
}

// GuestByPhone scans for the first booking with a matching phone number.
func (service *Service) GuestByPhone(phone Phone) (Booking, error) {
	for _, booking := range service.bookings {
		if booking.Phone == phone {
			return booking, nil
		}
	}
	return Booking{}, fmt.Errorf("%w: phone %s", ErrBookingNotFound, phone.String())
}

// MarkUnderMaintenance forces a room out of service. The override applies
// even to an occupied room and does not evict the occupant; the occupant's
// booking record stays untouched.
func (service *Service) MarkUnderMaintenance(ctx context.Context, number RoomNumber) error {
	operationError := service.markUnderMaintenance(ctx, number)
	service.logOperation(ctx, OperationLog{
		Operation: operationMarkMaintenance,
		Room:      number,
		Error:     operationError,
	})
	return operationError
}

func (service *Service) markUnderMaintenance(ctx context.Context, number RoomNumber) error {
	index := service.roomIndex(number)
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, number.Int())
	}
	previousAvailable := service.rooms[index].Available
	previousMaintenance := service.rooms[index].UnderMaintenance
	service.rooms[index].UnderMaintenance = true
	service.rooms[index].Available = false
	if err := service.store.SaveRooms(ctx, service.rooms); err != nil {
		service.rooms[index].Available = previousAvailable
		service.rooms[index].UnderMaintenance = previousMaintenance
		return err
	}
	return nil
}

// LogMaintenance appends an issue line to the maintenance log. The log is a
// free-text journal; the room is not required to exist.
func (service *Service) LogMaintenance(ctx context.Context, number RoomNumber, issue string) error {
	operationError := service.logbook.AppendMaintenance(ctx, MaintenanceEntry{Room: number, Issue: issue})
	service.logOperation(ctx, OperationLog{
		Operation: operationLogMaintenance,
		Room:      number,
		Error:     operationError,
	})
	return operationError
}

// MaintenanceLog lists the raw maintenance log lines, oldest first.
func (service *Service) MaintenanceLog(ctx context.Context) ([]string, error) {
	return service.logbook.MaintenanceLines(ctx)
}

// SubmitFeedback appends a validated rating to the feedback log.
func (service *Service) SubmitFeedback(ctx context.Context, entry Feedback) error {
	operationError := service.logbook.AppendFeedback(ctx, entry)
	service.logOperation(ctx, OperationLog{
		Operation: operationFeedback,
		Amount:    float64(entry.Stars),
		Error:     operationError,
	})
	return operationError
}

// FeedbackEntries lists submitted feedback, oldest first.
func (service *Service) FeedbackEntries(ctx context.Context) ([]Feedback, error) {
	return service.logbook.Feedback(ctx)
}

// BookingHistory returns the ordered log of reservations made this session.
func (service *Service) BookingHistory() []BookingEvent {
	history := make([]BookingEvent, len(service.history))
	copy(history, service.history)
	return history
}

func (service *Service) saveRoomsAndBookings(ctx context.Context) error {
	if err := service.store.SaveRooms(ctx, service.rooms); err != nil {
		return err
	}
	return service.store.SaveBookings(ctx, service.bookings)
}

func (service *Service) roomIndex(number RoomNumber) int {
	for index, room := range service.rooms {
		if room.Number == number {
			return index
		}
	}
	return -1
}

func (service *Service) snapshotRooms() []Room {
	rooms := make([]Room, len(service.rooms))
	copy(rooms, service.rooms)
	return rooms
}

func (service *Service) snapshotBookings() []Booking {
	bookings := make([]Booking, len(service.bookings))
	copy(bookings, service.bookings)
	return bookings
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}
