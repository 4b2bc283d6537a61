package hotel

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// RoomNumber identifies a room. Numbers are caller-assigned, never generated.
type RoomNumber struct {
	value int
}

// GuestName identifies a guest on a booking.
type GuestName struct {
	value string
}

// Phone is a guest contact number, the natural lookup key for bookings.
type Phone struct {
	value string
}

// RoomType is a free-text room category label ("Deluxe", "Single").
type RoomType struct {
	value string
}

// StayDate is an opaque caller-supplied date string. It is stored and
// round-tripped verbatim and never parsed as a calendar value.
type StayDate struct {
	value string
}

// Price is a non-negative money amount in whole currency units.
type Price float64

// NewRoomNumber validates a room number.
func NewRoomNumber(raw int) (RoomNumber, error) {
	if raw <= 0 {
		return RoomNumber{}, fmt.Errorf("%w: must be positive", ErrInvalidRoomNumber)
	}
	return RoomNumber{value: raw}, nil
}

// Int returns the numeric room number.
func (number RoomNumber) Int() int {
	return number.value
}

// IsZero reports whether the number is unset.
func (number RoomNumber) IsZero() bool {
	return number.value == 0
}

// NewGuestName validates and normalizes a guest name. Names are single
// whitespace-free tokens; the customers resource is whitespace-delimited.
func NewGuestName(raw string) (GuestName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GuestName{}, fmt.Errorf("%w: empty value", ErrInvalidGuestName)
	}
	if containsWhitespace(trimmed) {
		return GuestName{}, fmt.Errorf("%w: must not contain whitespace", ErrInvalidGuestName)
	}
	return GuestName{value: trimmed}, nil
}

// String returns the normalized name.
func (name GuestName) String() string {
	return name.value
}

// NewPhone validates and normalizes a phone number token.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, fmt.Errorf("%w: empty value", ErrInvalidPhone)
	}
	if containsWhitespace(trimmed) {
		return Phone{}, fmt.Errorf("%w: must not contain whitespace", ErrInvalidPhone)
	}
	return Phone{value: trimmed}, nil
}

// String returns the normalized phone number.
func (phone Phone) String() string {
	return phone.value
}

// NewRoomType validates and normalizes a room type label.
func NewRoomType(raw string) (RoomType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoomType{}, fmt.Errorf("%w: empty value", ErrInvalidRoomType)
	}
	if containsWhitespace(trimmed) {
		return RoomType{}, fmt.Errorf("%w: must not contain whitespace", ErrInvalidRoomType)
	}
	return RoomType{value: trimmed}, nil
}

// String returns the normalized label.
func (roomType RoomType) String() string {
	return roomType.value
}

// NewStayDate validates a date token without interpreting it.
func NewStayDate(raw string) (StayDate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StayDate{}, fmt.Errorf("%w: empty value", ErrInvalidStayDate)
	}
	if containsWhitespace(trimmed) {
		return StayDate{}, fmt.Errorf("%w: must not contain whitespace", ErrInvalidStayDate)
	}
	return StayDate{value: trimmed}, nil
}

// String returns the verbatim date token.
func (date StayDate) String() string {
	return date.value
}

// NewPrice validates a non-negative finite amount.
func NewPrice(raw float64) (Price, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, fmt.Errorf("%w: not a finite number", ErrInvalidPrice)
	}
	if raw < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidPrice)
	}
	return Price(raw), nil
}

// Float64 returns the amount as a float.
func (price Price) Float64() float64 {
	return float64(price)
}

// Room is an inventory entry. A room under maintenance is always also
// unavailable; availability alone distinguishes free from occupied.
type Room struct {
	Number           RoomNumber
	Type             RoomType
	Price            Price
	Capacity         int
	Available        bool
	UnderMaintenance bool
}

// NewRoom builds a room in its initial state: available, not under maintenance.
func NewRoom(number RoomNumber, roomType RoomType, price Price, capacity int) (Room, error) {
	if capacity <= 0 {
		return Room{}, fmt.Errorf("%w: must be positive", ErrInvalidCapacity)
	}
	return Room{
		Number:    number,
		Type:      roomType,
		Price:     price,
		Capacity:  capacity,
		Available: true,
	}, nil
}

// Booking is one active guest record. The room number is a soft reference;
// only the booking code path keeps it consistent with the room collection.
type Booking struct {
	Guest    GuestName
	Phone    Phone
	Room     RoomNumber
	CheckIn  StayDate
	CheckOut StayDate
}

// NewBooking assembles a booking from validated parts.
func NewBooking(guest GuestName, phone Phone, room RoomNumber, checkIn StayDate, checkOut StayDate) Booking {
	return Booking{
		Guest:    guest,
		Phone:    phone,
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

// StaffMember is a roster entry. Name and role are free text and persist on
// their own lines, so embedded spaces are allowed.
type StaffMember struct {
	ID     int
	Name   string
	Role   string
	Salary Price
}

// NewStaffMember validates a roster entry.
func NewStaffMember(id int, name string, role string, salary Price) (StaffMember, error) {
	if id <= 0 {
		return StaffMember{}, fmt.Errorf("%w: id must be positive", ErrInvalidStaffMember)
	}
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return StaffMember{}, fmt.Errorf("%w: empty name", ErrInvalidStaffMember)
	}
	return StaffMember{
		ID:     id,
		Name:   trimmedName,
		Role:   strings.TrimSpace(role),
		Salary: salary,
	}, nil
}

// RevenueTotals is the persisted revenue triple. Total is always the sum of
// the two parts, recomputed rather than trusted.
type RevenueTotals struct {
	Room    float64
	Service float64
	Total   float64
}

// MaintenanceEntry is one appended maintenance log line.
type MaintenanceEntry struct {
	Room  RoomNumber
	Issue string
}

// String renders the on-disk log line format.
func (entry MaintenanceEntry) String() string {
	return fmt.Sprintf("Room %d: %s", entry.Room.Int(), entry.Issue)
}

// Feedback is one guest rating with free text.
type Feedback struct {
	Stars int
	Text  string
}

// NewFeedback validates a star rating between 1 and 5.
func NewFeedback(stars int, text string) (Feedback, error) {
	if stars < 1 || stars > 5 {
		return Feedback{}, fmt.Errorf("%w: must be between 1 and 5", ErrInvalidRating)
	}
	return Feedback{Stars: stars, Text: strings.TrimSpace(text)}, nil
}

// Invoice is the result of a billing operation: the computed stay bill plus
// an ad hoc service charge.
type Invoice struct {
	StayBill      Price
	ServiceCharge Price
	Total         Price
}

// BookingEvent records one reservation in booking order. The history is an
// append-only log; cancellations do not remove events.
type BookingEvent struct {
	Guest         GuestName
	Room          RoomNumber
	BookedUnixUTC int64
}

// State is the full persisted snapshot loaded at session start.
type State struct {
	Rooms    []Room
	Bookings []Booking
	Staff    []StaffMember
	Revenue  RevenueTotals
}

// Store is the persistence contract used by Service. Every save fully
// rewrites the named resource; loads happen once at startup.
type Store interface {
	Load(ctx context.Context) (State, error)
	SaveRooms(ctx context.Context, rooms []Room) error
	SaveBookings(ctx context.Context, bookings []Booking) error
	SaveStaff(ctx context.Context, staff []StaffMember) error
	SaveRevenue(ctx context.Context, totals RevenueTotals) error
}

// Logbook is the append-only contract for the maintenance and feedback logs.
type Logbook interface {
	AppendMaintenance(ctx context.Context, entry MaintenanceEntry) error
	MaintenanceLines(ctx context.Context) ([]string, error)
	AppendFeedback(ctx context.Context, entry Feedback) error
	Feedback(ctx context.Context) ([]Feedback, error)
}

func containsWhitespace(value string) bool {
	return strings.IndexFunc(value, unicode.IsSpace) >= 0
}
