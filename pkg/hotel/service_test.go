package hotel

import (
	"context"
	"errors"
	"testing"
)

type stubStore struct {
	state State

	savedRooms    [][]Room
	savedBookings [][]Booking
	savedStaff    [][]StaffMember
	savedRevenue  []RevenueTotals

	loadError         error
	saveRoomsError    error
	saveBookingsError error
	saveStaffError    error
	saveRevenueError  error
}

func (store *stubStore) Load(ctx context.Context) (State, error) {
	if store.loadError != nil {
		return State{}, store.loadError
	}
	return store.state, nil
}

func (store *stubStore) SaveRooms(ctx context.Context, rooms []Room) error {
	if store.saveRoomsError != nil {
		return store.saveRoomsError
	}
	snapshot := make([]Room, len(rooms))
	copy(snapshot, rooms)
	store.savedRooms = append(store.savedRooms, snapshot)
	return nil
}

func (store *stubStore) SaveBookings(ctx context.Context, bookings []Booking) error {
	if store.saveBookingsError != nil {
		return store.saveBookingsError
	}
	snapshot := make([]Booking, len(bookings))
	copy(snapshot, bookings)
	store.savedBookings = append(store.savedBookings, snapshot)
	return nil
}

func (store *stubStore) SaveStaff(ctx context.Context, staff []StaffMember) error {
	if store.saveStaffError != nil {
		return store.saveStaffError
	}
	snapshot := make([]StaffMember, len(staff))
	copy(snapshot, staff)
	store.savedStaff = append(store.savedStaff, snapshot)
	return nil
}

func (store *stubStore) SaveRevenue(ctx context.Context, totals RevenueTotals) error {
	if store.saveRevenueError != nil {
		return store.saveRevenueError
	}
	store.savedRevenue = append(store.savedRevenue, totals)
	return nil
}

type stubLogbook struct {
	maintenance []MaintenanceEntry
	feedback    []Feedback

	appendMaintenanceError error
	appendFeedbackError    error
}

func (logbook *stubLogbook) AppendMaintenance(ctx context.Context, entry MaintenanceEntry) error {
	if logbook.appendMaintenanceError != nil {
		return logbook.appendMaintenanceError
	}
	logbook.maintenance = append(logbook.maintenance, entry)
	return nil
}

func (logbook *stubLogbook) MaintenanceLines(ctx context.Context) ([]string, error) {
	lines := make([]string, 0, len(logbook.maintenance))
	for _, entry := range logbook.maintenance {
		lines = append(lines, entry.String())
	}
	return lines, nil
}

func (logbook *stubLogbook) AppendFeedback(ctx context.Context, entry Feedback) error {
	if logbook.appendFeedbackError != nil {
		return logbook.appendFeedbackError
	}
	logbook.feedback = append(logbook.feedback, entry)
	return nil
}

func (logbook *stubLogbook) Feedback(ctx context.Context) ([]Feedback, error) {
	feedback := make([]Feedback, len(logbook.feedback))
	copy(feedback, logbook.feedback)
	return feedback, nil
}

func mustNewService(test *testing.T, store Store, logbook Logbook, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(store, logbook, options...)
	if err != nil {
		test.Fatalf("service init: %v", err)
	}
	if err := service.Load(context.Background()); err != nil {
		test.Fatalf("load: %v", err)
	}
	return service
}

func mustRoomNumber(test *testing.T, raw int) RoomNumber {
	test.Helper()
	number, err := NewRoomNumber(raw)
	if err != nil {
		test.Fatalf("room number %d: %v", raw, err)
	}
	return number
}

func mustRoomType(test *testing.T, raw string) RoomType {
	test.Helper()
	roomType, err := NewRoomType(raw)
	if err != nil {
		test.Fatalf("room type %q: %v", raw, err)
	}
	return roomType
}

func mustPrice(test *testing.T, raw float64) Price {
	test.Helper()
	price, err := NewPrice(raw)
	if err != nil {
		test.Fatalf("price %v: %v", raw, err)
	}
	return price
}

func mustGuestName(test *testing.T, raw string) GuestName {
	test.Helper()
	name, err := NewGuestName(raw)
	if err != nil {
		test.Fatalf("guest name %q: %v", raw, err)
	}
	return name
}

func mustPhone(test *testing.T, raw string) Phone {
	test.Helper()
	phone, err := NewPhone(raw)
	if err != nil {
		test.Fatalf("phone %q: %v", raw, err)
	}
	return phone
}

func mustStayDate(test *testing.T, raw string) StayDate {
	test.Helper()
	date, err := NewStayDate(raw)
	if err != nil {
		test.Fatalf("stay date %q: %v", raw, err)
	}
	return date
}

func mustRoom(test *testing.T, number int, roomType string, price float64, capacity int) Room {
	test.Helper()
	room, err := NewRoom(mustRoomNumber(test, number), mustRoomType(test, roomType), mustPrice(test, price), capacity)
	if err != nil {
		test.Fatalf("room %d: %v", number, err)
	}
	return room
}

func mustBooking(test *testing.T, guest string, phone string, room int, checkIn string, checkOut string) Booking {
	test.Helper()
	return NewBooking(
		mustGuestName(test, guest),
		mustPhone(test, phone),
		mustRoomNumber(test, room),
		mustStayDate(test, checkIn),
		mustStayDate(test, checkOut),
	)
}

func TestNewServiceRejectsNilDependencies(test *testing.T) {
	test.Parallel()
	if _, err := NewService(nil, &stubLogbook{}); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil store, got %v", err)
	}
	if _, err := NewService(&stubStore{}, nil); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf("expected ErrInvalidServiceConfig for nil logbook, got %v", err)
	}
}

func TestAddRoomPersistsAndPreservesOrder(test *testing.T) {
	test.Parallel()
	store := &stubStore{}
	service := mustNewService(test, store, &stubLogbook{})

	first := mustRoom(test, 101, "Deluxe", 150, 2)
	second := mustRoom(test, 102, "Single", 80, 1)
	if err := service.AddRoom(context.Background(), first); err != nil {
		test.Fatalf("add first room: %v", err)
	}
	if err := service.AddRoom(context.Background(), second); err != nil {
		test.Fatalf("add second room: %v", err)
	}

	rooms := service.Rooms()
	if len(rooms) != 2 || rooms[0].Number != first.Number || rooms[1].Number != second.Number {
		test.Fatalf("unexpected room order: %+v", rooms)
	}
	if len(store.savedRooms) != 2 {
		test.Fatalf("expected a save per mutation, got %d", len(store.savedRooms))
	}
	if !rooms[0].Available || rooms[0].UnderMaintenance {
		test.Fatalf("new room must start available and serviceable: %+v", rooms[0])
	}
}

func TestAddRoomRejectsDuplicateNumber(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	room := mustRoom(test, 101, "Deluxe", 150, 2)
	if err := service.AddRoom(context.Background(), room); err != nil {
		test.Fatalf("add room: %v", err)
	}
	err := service.AddRoom(context.Background(), mustRoom(test, 101, "Single", 80, 1))
	if !errors.Is(err, ErrDuplicateRoomNumber) {
		test.Fatalf("expected ErrDuplicateRoomNumber, got %v", err)
	}
	if len(service.Rooms()) != 1 {
		test.Fatalf("duplicate add must not grow the collection")
	}
}

func TestAddRoomEnforcesLimit(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{}, WithRoomLimit(1))
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1))
	if !errors.Is(err, ErrCapacityExceeded) {
		test.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestBookRoomFlipsAvailabilityAndPersistsBoth(test *testing.T) {
	test.Parallel()
	store := &stubStore{}
	service := mustNewService(test, store, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}

	booking := mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")
	if err := service.BookRoom(context.Background(), booking); err != nil {
		test.Fatalf("book room: %v", err)
	}

	room, err := service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup: %v", err)
	}
	if room.Available {
		test.Fatalf("booked room must be unavailable")
	}
	if len(store.savedRooms) != 2 || len(store.savedBookings) != 1 {
		test.Fatalf("expected rooms and bookings persisted, got %d room saves and %d booking saves",
			len(store.savedRooms), len(store.savedBookings))
	}
	bookings := service.Bookings()
	if len(bookings) != 1 || bookings[0].Guest != booking.Guest {
		test.Fatalf("unexpected bookings: %+v", bookings)
	}
}

func TestBookRoomUnknownRoom(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 404, "2024-01-01", "2024-01-03"))
	if !errors.Is(err, ErrRoomNotFound) {
		test.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestBookRoomUnavailableRoom(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("first booking: %v", err)
	}
	err := service.BookRoom(context.Background(), mustBooking(test, "Bob", "555-9999", 101, "2024-02-01", "2024-02-02"))
	if !errors.Is(err, ErrRoomUnavailable) {
		test.Fatalf("expected ErrRoomUnavailable, got %v", err)
	}
}

func TestBookRoomEnforcesGuestLimit(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{}, WithGuestLimit(1))
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room 101: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1)); err != nil {
		test.Fatalf("add room 102: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("first booking: %v", err)
	}
	err := service.BookRoom(context.Background(), mustBooking(test, "Bob", "555-9999", 102, "2024-02-01", "2024-02-02"))
	if !errors.Is(err, ErrCapacityExceeded) {
		test.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	room, lookupErr := service.RoomByNumber(mustRoomNumber(test, 102))
	if lookupErr != nil {
		test.Fatalf("room lookup: %v", lookupErr)
	}
	if !room.Available {
		test.Fatalf("failed booking must not consume the room")
	}
}

func TestBookRoomRollsBackWhenSaveFails(test *testing.T) {
	test.Parallel()
	store := &stubStore{}
	service := mustNewService(test, store, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	store.saveBookingsError = errors.New("disk full")

	err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03"))
	if err == nil {
		test.Fatalf("expected save failure to surface")
	}
	room, lookupErr := service.RoomByNumber(mustRoomNumber(test, 101))
	if lookupErr != nil {
		test.Fatalf("room lookup: %v", lookupErr)
	}
	if !room.Available {
		test.Fatalf("failed booking must leave the room available")
	}
	if len(service.Bookings()) != 0 {
		test.Fatalf("failed booking must not linger in the collection")
	}
}

func TestCancelBookingFreesRoomAndCompacts(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room 101: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1)); err != nil {
		test.Fatalf("add room 102: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book 101: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Bob", "555-9999", 102, "2024-02-01", "2024-02-02")); err != nil {
		test.Fatalf("book 102: %v", err)
	}

	if err := service.CancelBooking(context.Background(), mustGuestName(test, "Alice")); err != nil {
		test.Fatalf("cancel: %v", err)
	}

	room, err := service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup: %v", err)
	}
	if !room.Available {
		test.Fatalf("cancelled room must be available again")
	}
	bookings := service.Bookings()
	if len(bookings) != 1 || bookings[0].Guest.String() != "Bob" {
		test.Fatalf("expected only Bob to remain, got %+v", bookings)
	}
}

func TestCancelBookingKeepsMaintenanceRoomUnavailable(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book: %v", err)
	}
	if err := service.MarkUnderMaintenance(context.Background(), mustRoomNumber(test, 101)); err != nil {
		test.Fatalf("mark maintenance: %v", err)
	}
	if err := service.CancelBooking(context.Background(), mustGuestName(test, "Alice")); err != nil {
		test.Fatalf("cancel: %v", err)
	}

	room, err := service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup: %v", err)
	}
	if room.Available {
		test.Fatalf("room under maintenance must stay unavailable after cancellation")
	}
	if !room.UnderMaintenance {
		test.Fatalf("cancellation must not clear the maintenance flag")
	}
}

func TestCancelBookingUnknownGuest(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	err := service.CancelBooking(context.Background(), mustGuestName(test, "Nobody"))
	if !errors.Is(err, ErrBookingNotFound) {
		test.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCancelBookingFirstNameMatchWins(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room 101: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1)); err != nil {
		test.Fatalf("add room 102: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1111", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book 101: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-2222", 102, "2024-02-01", "2024-02-02")); err != nil {
		test.Fatalf("book 102: %v", err)
	}

	if err := service.CancelBooking(context.Background(), mustGuestName(test, "Alice")); err != nil {
		test.Fatalf("cancel: %v", err)
	}

	bookings := service.Bookings()
	if len(bookings) != 1 || bookings[0].Phone.String() != "555-2222" {
		test.Fatalf("expected the earlier booking to be cancelled, got %+v", bookings)
	}
}

func TestMarkUnderMaintenanceForcesFlagsWithoutEviction(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book: %v", err)
	}

	if err := service.MarkUnderMaintenance(context.Background(), mustRoomNumber(test, 101)); err != nil {
		test.Fatalf("mark maintenance: %v", err)
	}

	room, err := service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup: %v", err)
	}
	if !room.UnderMaintenance || room.Available {
		test.Fatalf("maintenance must force unavailable, got %+v", room)
	}
	if len(service.Bookings()) != 1 {
		test.Fatalf("maintenance must not evict the occupant")
	}
}

func TestMarkUnderMaintenanceUnknownRoom(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	err := service.MarkUnderMaintenance(context.Background(), mustRoomNumber(test, 404))
	if !errors.Is(err, ErrRoomNotFound) {
		test.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomSearchesScanInInsertionOrder(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room 101: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1)); err != nil {
		test.Fatalf("add room 102: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 103, "Deluxe", 170, 3)); err != nil {
		test.Fatalf("add room 103: %v", err)
	}

	deluxe := service.RoomsByType(mustRoomType(test, "Deluxe"))
	if len(deluxe) != 2 || deluxe[0].Number.Int() != 101 || deluxe[1].Number.Int() != 103 {
		test.Fatalf("unexpected type search result: %+v", deluxe)
	}
	priced := service.RoomsByPriceRange(mustPrice(test, 100), mustPrice(test, 160))
	if len(priced) != 1 || priced[0].Number.Int() != 101 {
		test.Fatalf("unexpected price filter result: %+v", priced)
	}
	if matches := service.RoomsByType(mustRoomType(test, "Suite")); len(matches) != 0 {
		test.Fatalf("expected no suites, got %+v", matches)
	}
}

func TestGuestByPhoneFindsFirstMatch(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book: %v", err)
	}

	booking, err := service.GuestByPhone(mustPhone(test, "555-1234"))
	if err != nil {
		test.Fatalf("guest lookup: %v", err)
	}
	if booking.Guest.String() != "Alice" {
		test.Fatalf("unexpected guest: %+v", booking)
	}
	if _, err := service.GuestByPhone(mustPhone(test, "555-0000")); !errors.Is(err, ErrBookingNotFound) {
		test.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestGuestByNameFindsFirstMatch(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room 101: %v", err)
	}
	if err := service.AddRoom(context.Background(), mustRoom(test, 102, "Single", 80, 1)); err != nil {
		test.Fatalf("add room 102: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1111", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book 101: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-2222", 102, "2024-02-01", "2024-02-02")); err != nil {
		test.Fatalf("book 102: %v", err)
	}

	booking, err := service.GuestByName(mustGuestName(test, "Alice"))
	if err != nil {
		test.Fatalf("guest lookup: %v", err)
	}
	if booking.Phone.String() != "555-1111" {
		test.Fatalf("expected the earlier booking, got %+v", booking)
	}
	if _, err := service.GuestByName(mustGuestName(test, "Nobody")); !errors.Is(err, ErrBookingNotFound) {
		test.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingHistoryKeepsCancelledReservations(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{}, WithClock(func() int64 { return 42 }))
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book: %v", err)
	}
	if err := service.CancelBooking(context.Background(), mustGuestName(test, "Alice")); err != nil {
		test.Fatalf("cancel: %v", err)
	}

	history := service.BookingHistory()
	if len(history) != 1 {
		test.Fatalf("history must keep cancelled reservations, got %+v", history)
	}
	if history[0].BookedUnixUTC != 42 {
		test.Fatalf("expected stubbed clock timestamp, got %d", history[0].BookedUnixUTC)
	}
}

func TestLogMaintenanceAppendsEntry(test *testing.T) {
	test.Parallel()
	logbook := &stubLogbook{}
	service := mustNewService(test, &stubStore{}, logbook)

	if err := service.LogMaintenance(context.Background(), mustRoomNumber(test, 101), "AC leaking"); err != nil {
		test.Fatalf("log maintenance: %v", err)
	}

	lines, err := service.MaintenanceLog(context.Background())
	if err != nil {
		test.Fatalf("maintenance log: %v", err)
	}
	if len(lines) != 1 || lines[0] != "Room 101: AC leaking" {
		test.Fatalf("unexpected maintenance lines: %v", lines)
	}
}

func TestSubmitFeedbackAppendsEntry(test *testing.T) {
	test.Parallel()
	logbook := &stubLogbook{}
	service := mustNewService(test, &stubStore{}, logbook)

	entry, err := NewFeedback(5, "great stay")
	if err != nil {
		test.Fatalf("feedback: %v", err)
	}
	if err := service.SubmitFeedback(context.Background(), entry); err != nil {
		test.Fatalf("submit feedback: %v", err)
	}

	entries, err := service.FeedbackEntries(context.Background())
	if err != nil {
		test.Fatalf("feedback entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Stars != 5 {
		test.Fatalf("unexpected feedback: %+v", entries)
	}
}

func TestFullBookingLifecycle(test *testing.T) {
	test.Parallel()
	service := mustNewService(test, &stubStore{}, &stubLogbook{})
	if err := service.AddRoom(context.Background(), mustRoom(test, 101, "Deluxe", 150, 2)); err != nil {
		test.Fatalf("add room: %v", err)
	}
	if err := service.BookRoom(context.Background(), mustBooking(test, "Alice", "555-1234", 101, "2024-01-01", "2024-01-03")); err != nil {
		test.Fatalf("book: %v", err)
	}

	room, err := service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup: %v", err)
	}
	if room.Available {
		test.Fatalf("room must be occupied after booking")
	}
	if bill := service.StayBill(mustPhone(test, "555-1234")); bill.Float64() != 450 {
		test.Fatalf("expected 3 nights at 150 = 450, got %v", bill.Float64())
	}
	if err := service.CancelBooking(context.Background(), mustGuestName(test, "Alice")); err != nil {
		test.Fatalf("cancel: %v", err)
	}
	room, err = service.RoomByNumber(mustRoomNumber(test, 101))
	if err != nil {
		test.Fatalf("room lookup after cancel: %v", err)
	}
	if !room.Available {
		test.Fatalf("room must be available after cancellation")
	}
	if len(service.Bookings()) != 0 {
		test.Fatalf("booking collection must shrink by one")
	}
}
